package reqctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	ctx := WithAdmin(WithRequestID(context.Background(), "rid-1"), "root")

	rid, ok := GetRequestID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "rid-1", rid)

	admin, ok := GetAdmin(ctx)
	assert.True(t, ok)
	assert.Equal(t, "root", admin)

	_, ok = GetAdmin(context.Background())
	assert.False(t, ok)
}
