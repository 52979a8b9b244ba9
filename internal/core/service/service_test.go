package service_test

import (
	"testing"

	"github.com/craftly/storefront/pkg/schema"
	"github.com/stretchr/testify/require"
)

func newCartSerde(t *testing.T) schema.Serde {
	t.Helper()
	serde, err := schema.NewSerdeCartV1()
	require.NoError(t, err)
	return serde
}

func newWishlistSerde(t *testing.T) schema.Serde {
	t.Helper()
	serde, err := schema.NewSerdeWishlistV1()
	require.NoError(t, err)
	return serde
}
