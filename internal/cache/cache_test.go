package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilClientIsAMissOnlyCache(t *testing.T) {
	var c *Client

	require.NoError(t, c.PutSnapshot(context.Background(), "crypto", "", map[string]int{"x": 1}, time.Minute))

	var dest map[string]int
	hit, err := c.GetSnapshot(context.Background(), "crypto", "", &dest)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, c.Ping(context.Background()))
}

func TestNewWithoutAddrReturnsNil(t *testing.T) {
	assert.Nil(t, New("", ""))
}

func TestSnapshotKey(t *testing.T) {
	assert.Equal(t, "onehub:snapshot:crypto", snapshotKey("crypto", ""))
	assert.Equal(t, "onehub:snapshot:weather:London", snapshotKey("weather", "London"))
}
