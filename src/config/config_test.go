package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSecret = "config-test-secret-0123456789abcdefgh"

func newViper(values map[string]interface{}) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestDefaults(t *testing.T) {
	cfg, err := FromViper(newViper(nil))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, RegistrationProtected, cfg.RegistrationMode)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestGeneratedSecret(t *testing.T) {
	a, err := FromViper(newViper(nil))
	require.NoError(t, err)
	b, err := FromViper(newViper(nil))
	require.NoError(t, err)

	assert.True(t, a.GeneratedSecret)
	assert.Len(t, a.JWTSecret, MinJWTSecretLength)
	assert.NotEqual(t, a.JWTSecret, b.JWTSecret)

	c, err := FromViper(newViper(map[string]interface{}{"jwt_secret": validSecret}))
	require.NoError(t, err)
	assert.False(t, c.GeneratedSecret)
	assert.Equal(t, validSecret, c.JWTSecret)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]interface{}
		wantErr string
	}{
		{"short secret", map[string]interface{}{"jwt_secret": "too-short"}, "JWT_SECRET"},
		{"bad port", map[string]interface{}{"port": 70000}, "PORT"},
		{"bad env", map[string]interface{}{"app_env": "staging"}, "APP_ENV"},
		{"bad registration mode", map[string]interface{}{"registration_mode": "public"}, "REGISTRATION_MODE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromViper(newViper(tt.values))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalization(t *testing.T) {
	cfg, err := FromViper(newViper(map[string]interface{}{
		"app_env":           "Development",
		"registration_mode": "OPEN",
		"allowed_origins":   " http://a.example , ,http://b.example",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, RegistrationOpen, cfg.RegistrationMode)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", validSecret)
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thesis.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 7070\njwt_secret: "+validSecret+"\nstatic_dir: ./web/dist\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "./web/dist", cfg.StaticDir)

	t.Setenv("PORT", "6060")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Port, "environment overrides the file")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
