package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJitterTTL_StaysWithinTenPercent(t *testing.T) {
	ttl := 10 * time.Minute
	for i := 0; i < 200; i++ {
		got := jitterTTL(ttl)
		assert.GreaterOrEqual(t, got, 9*time.Minute)
		assert.LessOrEqual(t, got, 11*time.Minute)
	}
}

func TestJitterTTL_PassesThroughTinyValues(t *testing.T) {
	assert.Equal(t, time.Duration(0), jitterTTL(0))
	assert.Equal(t, time.Duration(-1), jitterTTL(-1))
	assert.Equal(t, 5*time.Nanosecond, jitterTTL(5*time.Nanosecond))
}

func TestBuildKey_UsesPrefix(t *testing.T) {
	c := &cache{prefix: "clauselens:"}
	assert.Equal(t, "clauselens:assessment:abc", c.buildKey("assessment:abc"))
}

func TestOptions(t *testing.T) {
	c := &cache{prefix: "clauselens:", defaultTTL: defaultTTL, nullTTL: defaultNullTTL}

	WithPrefix("test:")(c)
	WithDefaultTTL(time.Hour)(c)
	WithNullTTL(10 * time.Second)(c)

	assert.Equal(t, "test:", c.prefix)
	assert.Equal(t, time.Hour, c.defaultTTL)
	assert.Equal(t, 10*time.Second, c.nullTTL)
}
