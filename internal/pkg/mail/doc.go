// Package mail defines the contracts for sending email messages.
//
// Use cases depend on the Mail interface and the Message payload only, so the
// delivery mechanism can be swapped without touching callers. The package
// ships an SMTP implementation built on net/smtp.
package mail
