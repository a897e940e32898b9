package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestServer_IpAddressUniqueIndex(t *testing.T) {
	s, err := schema.Parse(&Server{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	assert.Equal(t, "servers", s.Table)

	idx := s.LookIndex("servers_ip_address_key")
	require.NotNil(t, idx)
	assert.Equal(t, "UNIQUE", idx.Class)
	require.Len(t, idx.Fields, 1)
	assert.Equal(t, "ip_address", idx.Fields[0].DBName)

	field := s.LookUpField("ip_address")
	require.NotNil(t, field)
	assert.True(t, field.NotNull)
}
