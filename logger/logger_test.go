package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("cualquiera"))
}

func TestNewEscribeJSONEnArchivo(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "app.log")
	log, err := New(Config{Level: "info", Format: "json", Output: ruta})
	require.NoError(t, err)

	log.Debug("no debe aparecer")
	log.Info("Paciente creado", zap.Int64("id_paciente", 7))
	require.NoError(t, log.Sync())

	contenido, err := os.ReadFile(ruta)
	require.NoError(t, err)
	assert.Contains(t, string(contenido), `"msg":"Paciente creado"`)
	assert.Contains(t, string(contenido), `"id_paciente":7`)
	assert.NotContains(t, string(contenido), "no debe aparecer")
}

func TestNewArchivoInvalido(t *testing.T) {
	_, err := New(Config{Output: filepath.Join(t.TempDir(), "no", "existe", "app.log")})
	assert.Error(t, err)
}
