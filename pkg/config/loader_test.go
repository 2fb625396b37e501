package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalift/elasticsink/pkg/sinkerrors"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPropsProperties(t *testing.T) {
	path := writeConfigFile(t, "sink.properties", `
connection.url=http://localhost:9200
type.name=kafka-connect
batch.size=500
`)

	props, err := LoadProps(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9200", props[ConnectionURLConfig])
	assert.Equal(t, "kafka-connect", props[TypeNameConfig])
	assert.Equal(t, "500", props[BatchSizeConfig])

	cfg, err := New(props)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Snapshot().Int(BatchSizeConfig))
}

func TestLoadPropsYAML(t *testing.T) {
	path := writeConfigFile(t, "sink.yaml", `
connection:
  url:
    - http://a:9200
    - http://b:9200
type:
  name: kafka-connect
batch:
  size: 500
proxy:
  host: proxy.internal
  port: 3128
`)

	props, err := LoadProps(path)
	require.NoError(t, err)

	assert.Equal(t, "http://a:9200,http://b:9200", props[ConnectionURLConfig])
	assert.Equal(t, "kafka-connect", props[TypeNameConfig])
	assert.Equal(t, "500", props[BatchSizeConfig])
	assert.Equal(t, "proxy.internal", props[ProxyHostConfig])
	assert.Equal(t, "3128", props[ProxyPortConfig])

	cfg, err := New(props)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, cfg.Snapshot().List(ConnectionURLConfig))
}

func TestLoadPropsJSON(t *testing.T) {
	path := writeConfigFile(t, "sink.json", `{
  "connection.url": "http://localhost:9200",
  "type.name": "kafka-connect",
  "key.ignore": "true"
}`)

	props, err := LoadProps(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9200", props[ConnectionURLConfig])
	assert.Equal(t, "true", props[KeyIgnoreConfig])
}

func TestLoadPropsEnvSubstitution(t *testing.T) {
	t.Setenv("ES_PASSWORD", "hunter2")

	path := writeConfigFile(t, "sink.properties", `
connection.url=http://localhost:9200
type.name=kafka-connect
connection.username=elastic
connection.password=${ES_PASSWORD}
`)

	props, err := LoadProps(path)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", props[ConnectionPasswordConfig])
}

func TestLoadPropsUnsetEnvSubstitutesEmpty(t *testing.T) {
	path := writeConfigFile(t, "sink.properties", `
connection.url=http://localhost:9200
type.name=kafka-connect
proxy.host=${UNSET_PROXY_HOST_FOR_TEST}
`)

	props, err := LoadProps(path)
	require.NoError(t, err)
	assert.Equal(t, "", props[ProxyHostConfig])
}

func TestLoadPropsFailures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadProps(filepath.Join(t.TempDir(), "absent.properties"))
		require.Error(t, err)
		assert.True(t, sinkerrors.IsType(err, sinkerrors.ErrorTypeConfig))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeConfigFile(t, "sink.toml", `a = "b"`)
		_, err := LoadProps(path)
		require.Error(t, err)
		assert.True(t, sinkerrors.IsType(err, sinkerrors.ErrorTypeConfig))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfigFile(t, "sink.yaml", "a: [unclosed")
		_, err := LoadProps(path)
		require.Error(t, err)
		assert.True(t, sinkerrors.IsType(err, sinkerrors.ErrorTypeConfig))
	})
}
