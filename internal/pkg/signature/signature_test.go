package signature

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignIsDeterministic(t *testing.T) {
	s := NewSigner("chave-de-teste")

	first := s.Sign("Título: Laudo A\nNúmero: L-0001")
	second := s.Sign("Título: Laudo A\nNúmero: L-0001")

	require.NotEmpty(t, first)
	require.Equal(t, first, second)
}

func TestSignChangesWithInput(t *testing.T) {
	s := NewSigner("chave-de-teste")

	base := s.Sign("Título: Laudo A\nNúmero: L-0001")
	require.NotEqual(t, base, s.Sign("Título: Laudo B\nNúmero: L-0001"))
	require.NotEqual(t, base, s.Sign("Título: Laudo A\nNúmero: L-0002"))
}

func TestSignChangesWithKey(t *testing.T) {
	canonical := "Título: Laudo A\nNúmero: L-0001"
	require.NotEqual(t, NewSigner("chave-1").Sign(canonical), NewSigner("chave-2").Sign(canonical))
}

func TestVerify(t *testing.T) {
	s := NewSigner("chave-de-teste")
	sig := s.Sign("conteúdo")

	require.True(t, s.Verify("conteúdo", sig))
	require.False(t, s.Verify("conteúdo alterado", sig))
	require.False(t, s.Verify("conteúdo", "assinatura-falsa"))
}
