package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cobranzas-api/pkg/jwt"
)

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	sub := jwt.Subject{UserID: "u-1", Role: "vendedor", SellerScope: "A,B"}
	tok, err := jwt.Generate("s3cr3t", sub, "cobranzas-test", 5)
	require.NoError(t, err)

	got, err := jwt.Parse("s3cr3t", tok)
	require.NoError(t, err)
	assert.Equal(t, sub, got)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate("uno", jwt.Subject{UserID: "u"}, "x", 5)
	require.NoError(t, err)
	_, err = jwt.Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := jwt.Generate("s", jwt.Subject{UserID: "u"}, "x", -1)
	require.NoError(t, err)
	_, err = jwt.Parse("s", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", jwt.Subject{}, "x", 5)
	assert.Error(t, err)
}
