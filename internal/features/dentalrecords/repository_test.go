package dentalrecords

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// unreachableRepo builds a repository against a dead endpoint with short
// timeouts. Defaulting happens before the insert, so it is observable even
// though the write itself fails.
func unreachableRepo(t *testing.T) *Repository {
	t.Helper()

	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(50*time.Millisecond).
		SetConnectTimeout(50*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	return NewRepository(client.Database("dentalrecords_test"))
}

func TestCreateDefaultsStatusToIdentificado(t *testing.T) {
	repo := unreachableRepo(t)

	registro := &Registro{
		TipoDoRegistro: TipoAnteMortem,
		Caracteristica: "Arcada superior completa",
	}
	_ = repo.Create(context.Background(), registro)

	assert.Equal(t, StatusIdentificado, registro.Status)
}

func TestCreateKeepsExplicitStatus(t *testing.T) {
	repo := unreachableRepo(t)

	registro := &Registro{
		TipoDoRegistro: TipoPostMortem,
		Caracteristica: "Mandíbula fragmentada",
		Status:         StatusNaoIdentificado,
	}
	_ = repo.Create(context.Background(), registro)

	assert.Equal(t, StatusNaoIdentificado, registro.Status)
}

func TestCreateDefaultsDataRegistro(t *testing.T) {
	repo := unreachableRepo(t)

	registro := &Registro{
		TipoDoRegistro: TipoAnteMortem,
		Caracteristica: "Arcada superior completa",
	}
	_ = repo.Create(context.Background(), registro)

	assert.False(t, registro.DataRegistro.IsZero())
}
