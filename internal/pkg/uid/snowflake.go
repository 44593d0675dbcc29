package uid

import (
	"crypto/rand"
	"math/big"
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates sortable 64-bit identifiers for database rows.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake builds a generator whose node ID comes from the NODE_ID
// environment variable, falling back to a random node when unset. Random
// fallback is acceptable for single-instance deployments; multi-instance
// deployments must pin NODE_ID to avoid collisions.
func NewSnowflake() (*Snowflake, error) {
	nodeID, err := resolveNodeID()
	if err != nil {
		return nil, err
	}

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new snowflake ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}

func resolveNodeID() (int64, error) {
	if v := os.Getenv("NODE_ID"); v != "" {
		return strconv.ParseInt(v, 10, 64)
	}

	n, err := rand.Int(rand.Reader, big.NewInt(1024))
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}
