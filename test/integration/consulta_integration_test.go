package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitohq/transito-in-go/pkg/server/store"
)

type consultaEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *store.Vehiculo `json:"data"`
}

// TestConsultaAPI exercises the full stack against a real MySQL instance:
// container, migrations, seed data, HTTP server. Set INTEGRATION_TEST=1 to run.
func TestConsultaAPI(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TEST=1 to run.")
	}

	ctx := context.Background()
	tc, err := NewTestContext(ctx)
	require.NoError(t, err, "failed to create test context")
	defer tc.Close(ctx)

	t.Run("status endpoint", func(t *testing.T) {
		body, status := get(t, tc, "/")
		assert.Equal(t, http.StatusOK, status)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, "API Consultas Vehiculares", resp["message"])
		assert.Equal(t, "running", resp["status"])
	})

	t.Run("health reports connected", func(t *testing.T) {
		body, status := get(t, tc, "/api/health")
		assert.Equal(t, http.StatusOK, status)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, "healthy", resp["status"])
		assert.Equal(t, "connected", resp["database"])
	})

	t.Run("consulta returns the assembled record", func(t *testing.T) {
		body, status := get(t, tc, "/api/consulta/ABC-123/1234567")
		assert.Equal(t, http.StatusOK, status)

		var resp consultaEnvelope
		require.NoError(t, json.Unmarshal(body, &resp))
		require.True(t, resp.Success, "expected success: %s", resp.Message)
		assert.Equal(t, "Consulta exitosa", resp.Message)
		require.NotNil(t, resp.Data)

		assert.Equal(t, "ABC-123", resp.Data.Placa)
		require.NotNil(t, resp.Data.Marca)
		assert.Equal(t, "Renault", *resp.Data.Marca)
		assert.Equal(t, "Carlos Pérez", resp.Data.Propietario.Nombre)
		assert.Equal(t, "1234567", resp.Data.Propietario.Cedula)

		require.Len(t, resp.Data.Documentos, 2)
		assert.Equal(t, "SOAT", resp.Data.Documentos[0].Tipo)
		assert.Equal(t, "$150.000", resp.Data.Documentos[0].Valor)
		assert.Equal(t, "Tecnomecánica", resp.Data.Documentos[1].Tipo)

		// Seeded with two fines; newest first.
		require.Len(t, resp.Data.Multas, 2)
		assert.Equal(t, "2024-05-01", resp.Data.Multas[0].Fecha)
		assert.Equal(t, "2023-01-15", resp.Data.Multas[1].Fecha)

		// Two past transfers, newest first, with placeholder names.
		require.Len(t, resp.Data.Historial, 2)
		assert.Equal(t, "987654321", resp.Data.Historial[0].Cedula)
		assert.Equal(t, "Propietario 321", resp.Data.Historial[0].Nombre)
		assert.Equal(t, "2020", resp.Data.Historial[0].Desde)
		assert.Equal(t, "Actual", resp.Data.Historial[0].Hasta)
	})

	t.Run("consulta with wrong cedula finds nothing", func(t *testing.T) {
		body, status := get(t, tc, "/api/consulta/ABC-123/7654321")
		assert.Equal(t, http.StatusOK, status)

		var resp consultaEnvelope
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "No se encontró información para la placa y cédula proporcionadas", resp.Message)
		assert.Nil(t, resp.Data)
	})

	t.Run("consulta without fines returns empty lists", func(t *testing.T) {
		body, status := get(t, tc, "/api/consulta/XYZ-12A/7654321")
		assert.Equal(t, http.StatusOK, status)

		var resp consultaEnvelope
		require.NoError(t, json.Unmarshal(body, &resp))
		require.True(t, resp.Success)
		require.NotNil(t, resp.Data)
		assert.NotNil(t, resp.Data.Multas)
		assert.Empty(t, resp.Data.Multas)
		assert.NotNil(t, resp.Data.Historial)
		assert.Empty(t, resp.Data.Historial)
	})

	t.Run("invalid placa is rejected before the database", func(t *testing.T) {
		body, status := get(t, tc, "/api/consulta/AB1/1234567")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, string(body), "Formato de placa inválido")
	})

	t.Run("invalid cedula is rejected before the database", func(t *testing.T) {
		body, status := get(t, tc, "/api/consulta/ABC-123/12345")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, string(body), "Formato de cédula inválido")
	})
}

func get(t *testing.T, tc *TestContext, path string) ([]byte, int) {
	t.Helper()

	resp, err := tc.HTTPClient.Get(fmt.Sprintf("%s%s", tc.ServerURL, path))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body, resp.StatusCode
}
