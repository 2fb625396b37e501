package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalift/elasticsink/pkg/configdef"
)

// minimalProps returns the smallest valid configuration. Tests mutate the
// copy freely.
func minimalProps(overrides map[string]string) map[string]string {
	props := map[string]string{
		ConnectionURLConfig: "http://localhost:9200",
		TypeNameConfig:      "kafka-connect",
	}
	for k, v := range overrides {
		props[k] = v
	}
	return props
}

func TestDefRegistryShape(t *testing.T) {
	assert.Equal(t, 48, Def.Len())

	f, ok := Def.Get(ConnectionURLConfig)
	require.True(t, ok)
	assert.True(t, f.Required)
	assert.Equal(t, configdef.TypeList, f.Type)

	f, ok = Def.Get(SSLConfigPrefix + SSLKeystorePasswordConfig)
	require.True(t, ok)
	assert.Equal(t, configdef.TypePassword, f.Type)
	assert.Equal(t, "Security", f.Group)
}

func TestNewDefaults(t *testing.T) {
	cfg, err := New(minimalProps(nil))
	require.NoError(t, err)
	snap := cfg.Snapshot()

	assert.Equal(t, []string{"http://localhost:9200"}, snap.List(ConnectionURLConfig))
	assert.Equal(t, "", snap.String(ConnectionUsernameConfig))
	assert.Nil(t, snap.Password(ConnectionPasswordConfig))
	assert.Equal(t, 2000, snap.Int(BatchSizeConfig))
	assert.Equal(t, 5, snap.Int(MaxInFlightRequestsConfig))
	assert.Equal(t, 20000, snap.Int(MaxBufferedRecordsConfig))
	assert.Equal(t, int64(1), snap.Long(LingerMSConfig))
	assert.Equal(t, int64(10000), snap.Long(FlushTimeoutMSConfig))
	assert.Equal(t, 5, snap.Int(MaxRetriesConfig))
	assert.Equal(t, int64(100), snap.Long(RetryBackoffMSConfig))
	assert.False(t, snap.Bool(ConnectionCompressionConfig))
	assert.Equal(t, 60000, snap.Int(MaxConnectionIdleTimeMSConfig))
	assert.Equal(t, 1000, snap.Int(ConnectionTimeoutMSConfig))
	assert.Equal(t, 3000, snap.Int(ReadTimeoutMSConfig))
	assert.True(t, snap.Bool(AutoCreateIndicesAtStartConfig))
	assert.Equal(t, 0, snap.Int(RetryOnConflictConfig))

	assert.Equal(t, "kafka-connect", snap.String(TypeNameConfig))
	assert.False(t, snap.Bool(KeyIgnoreConfig))
	assert.False(t, snap.Bool(SchemaIgnoreConfig))
	assert.True(t, snap.Bool(CompactMapEntriesConfig))
	assert.Equal(t, []string{}, snap.List(TopicIndexMapConfig))
	assert.Equal(t, []string{}, snap.List(TopicKeyIgnoreConfig))
	assert.Equal(t, []string{}, snap.List(TopicSchemaIgnoreConfig))
	assert.False(t, snap.Bool(DropInvalidMessageConfig))
	assert.Equal(t, string(BehaviorOnNullValuesIgnore), snap.String(BehaviorOnNullValuesConfig))
	assert.Equal(t, string(BehaviorOnMalformedDocFail), snap.String(BehaviorOnMalformedDocsConfig))
	assert.Equal(t, string(WriteMethodInsert), snap.String(WriteMethodConfig))
	assert.Equal(t, string(DocumentVersionTypeLegacy), snap.String(DocumentVersionTypeConfig))

	assert.Equal(t, "", snap.String(ProxyHostConfig))
	assert.Equal(t, 8080, snap.Int(ProxyPortConfig))
	assert.Equal(t, "", snap.String(ProxyUsernameConfig))
	assert.Nil(t, snap.Password(ProxyPasswordConfig))

	assert.Equal(t, string(SecurityProtocolPlaintext), snap.String(SecurityProtocolConfig))
}

func TestNewMissingRequired(t *testing.T) {
	tests := []struct {
		name string
		omit string
	}{
		{"connection url", ConnectionURLConfig},
		{"type name", TypeNameConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := minimalProps(nil)
			delete(props, tt.omit)

			_, err := New(props)
			var missing *configdef.MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.omit, missing.Key)
		})
	}
}

func TestNewRejectsEmptyConnectionURL(t *testing.T) {
	_, err := New(minimalProps(map[string]string{ConnectionURLConfig: ""}))

	var validation *configdef.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, ConnectionURLConfig, validation.Key)
}

func TestNewEnumValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"null values behavior", BehaviorOnNullValuesConfig, "drop"},
		{"null values behavior is case-sensitive", BehaviorOnNullValuesConfig, "Ignore"},
		{"malformed docs behavior", BehaviorOnMalformedDocsConfig, "skip"},
		{"write method", WriteMethodConfig, "update"},
		{"security protocol", SecurityProtocolConfig, "ssl"},
		{"document version type", DocumentVersionTypeConfig, "offset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(minimalProps(map[string]string{tt.key: tt.value}))
			var validation *configdef.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.key, validation.Key)
		})
	}
}

func TestNewEnumValuesRoundTrip(t *testing.T) {
	enums := map[string][]string{
		BehaviorOnNullValuesConfig:    BehaviorOnNullValuesList(),
		BehaviorOnMalformedDocsConfig: BehaviorOnMalformedDocList(),
		WriteMethodConfig:             WriteMethodList(),
		SecurityProtocolConfig:        SecurityProtocolList(),
		DocumentVersionTypeConfig:     DocumentVersionTypeList(),
	}
	for key, values := range enums {
		for _, value := range values {
			cfg, err := New(minimalProps(map[string]string{key: value}))
			require.NoError(t, err, "%s=%s", key, value)
			assert.Equal(t, value, cfg.Snapshot().String(key))
		}
	}
}

func TestNewEmptyTopicIndexMap(t *testing.T) {
	cfg, err := New(minimalProps(map[string]string{TopicIndexMapConfig: ""}))
	require.NoError(t, err)
	assert.Equal(t, []string{}, cfg.Snapshot().List(TopicIndexMapConfig))
}

func TestNewProxyPortRange(t *testing.T) {
	for _, port := range []string{"0", "-1", "65536"} {
		_, err := New(minimalProps(map[string]string{ProxyPortConfig: port}))
		var typeErr *configdef.TypeError
		require.ErrorAs(t, err, &typeErr, "port %s", port)
		assert.Equal(t, ProxyPortConfig, typeErr.Key)
	}

	for _, port := range []string{"1", "8080", "65535"} {
		_, err := New(minimalProps(map[string]string{
			ProxyHostConfig: "proxy.internal",
			ProxyPortConfig: port,
		}))
		assert.NoError(t, err, "port %s", port)
	}
}

func TestProxyCrossFieldValidation(t *testing.T) {
	t.Run("credentials without host conflict", func(t *testing.T) {
		_, err := New(minimalProps(map[string]string{
			ProxyUsernameConfig: "squid",
			ProxyPasswordConfig: "hunter2",
		}))
		var conflict *configdef.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Contains(t, conflict.Keys, ProxyUsernameConfig)
		assert.Contains(t, conflict.Keys, ProxyPasswordConfig)
		assert.Contains(t, err.Error(), "cannot be set without proxy.host")
	})

	t.Run("username alone without host conflicts", func(t *testing.T) {
		_, err := New(minimalProps(map[string]string{ProxyUsernameConfig: "squid"}))
		var conflict *configdef.ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("username without password conflicts", func(t *testing.T) {
		_, err := New(minimalProps(map[string]string{
			ProxyHostConfig:     "proxy.internal",
			ProxyUsernameConfig: "squid",
		}))
		var conflict *configdef.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Contains(t, err.Error(), "both proxy.username and proxy.password must be set")
	})

	t.Run("password without username conflicts", func(t *testing.T) {
		_, err := New(minimalProps(map[string]string{
			ProxyHostConfig:     "proxy.internal",
			ProxyPasswordConfig: "hunter2",
		}))
		var conflict *configdef.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Contains(t, err.Error(), "both proxy.username and proxy.password must be set")
	})

	t.Run("host alone is valid", func(t *testing.T) {
		cfg, err := New(minimalProps(map[string]string{ProxyHostConfig: "proxy.internal"}))
		require.NoError(t, err)
		assert.True(t, cfg.IsBasicProxyConfigured())
		assert.False(t, cfg.IsProxyWithAuthenticationConfigured())
	})

	t.Run("host with full credentials is valid", func(t *testing.T) {
		cfg, err := New(minimalProps(map[string]string{
			ProxyHostConfig:     "proxy.internal",
			ProxyUsernameConfig: "squid",
			ProxyPasswordConfig: "hunter2",
		}))
		require.NoError(t, err)
		assert.True(t, cfg.IsBasicProxyConfigured())
		assert.True(t, cfg.IsProxyWithAuthenticationConfigured())
	})

	t.Run("no proxy at all is valid", func(t *testing.T) {
		cfg, err := New(minimalProps(nil))
		require.NoError(t, err)
		assert.False(t, cfg.IsBasicProxyConfigured())
		assert.False(t, cfg.IsProxyWithAuthenticationConfigured())
	})
}

func TestSecured(t *testing.T) {
	cfg, err := New(minimalProps(nil))
	require.NoError(t, err)
	assert.False(t, cfg.Secured())
	assert.Equal(t, SecurityProtocolPlaintext, cfg.SecurityProtocolValue())

	cfg, err = New(minimalProps(map[string]string{SecurityProtocolConfig: "SSL"}))
	require.NoError(t, err)
	assert.True(t, cfg.Secured())
	assert.Equal(t, SecurityProtocolSSL, cfg.SecurityProtocolValue())
}

func TestSSLConfigs(t *testing.T) {
	t.Run("defaults when nothing prefixed", func(t *testing.T) {
		cfg, err := New(minimalProps(nil))
		require.NoError(t, err)

		ssl, err := cfg.SSLConfigs()
		require.NoError(t, err)
		assert.Equal(t, "TLSv1.2", ssl.String(SSLProtocolConfig))
		assert.Equal(t, "JKS", ssl.String(SSLKeystoreTypeConfig))
		assert.Equal(t, "JKS", ssl.String(SSLTruststoreTypeConfig))
		assert.Equal(t, "SunX509", ssl.String(SSLKeymanagerAlgorithmConfig))
		assert.Equal(t, "PKIX", ssl.String(SSLTrustmanagerAlgorithmConfig))
		assert.Equal(t, "https", ssl.String(SSLEndpointIdentificationAlgorithmConfig))
		assert.Equal(t, []string{"TLSv1.2", "TLSv1.1", "TLSv1"}, ssl.List(SSLEnabledProtocolsConfig))
		assert.Nil(t, ssl.Password(SSLKeystorePasswordConfig))
	})

	t.Run("prefixed keys override", func(t *testing.T) {
		cfg, err := New(minimalProps(map[string]string{
			SSLConfigPrefix + SSLProtocolConfig:           "TLSv1.3",
			SSLConfigPrefix + SSLTruststoreLocationConfig: "/etc/ssl/truststore.jks",
			SSLConfigPrefix + SSLTruststorePasswordConfig: "changeit",
		}))
		require.NoError(t, err)

		ssl, err := cfg.SSLConfigs()
		require.NoError(t, err)
		assert.Equal(t, "TLSv1.3", ssl.String(SSLProtocolConfig))
		assert.Equal(t, "/etc/ssl/truststore.jks", ssl.String(SSLTruststoreLocationConfig))
		assert.Equal(t, "changeit", ssl.Password(SSLTruststorePasswordConfig).Value())
	})

	t.Run("unprefixed keys are ignored", func(t *testing.T) {
		cfg, err := New(minimalProps(map[string]string{
			"ssl.protocol": "TLSv1.3",
		}))
		require.NoError(t, err)

		ssl, err := cfg.SSLConfigs()
		require.NoError(t, err)
		assert.Equal(t, "TLSv1.2", ssl.String(SSLProtocolConfig))
	})
}

func TestShouldDisableHostnameVerification(t *testing.T) {
	t.Run("absent key keeps verification", func(t *testing.T) {
		cfg, err := New(minimalProps(nil))
		require.NoError(t, err)
		assert.False(t, cfg.ShouldDisableHostnameVerification())
	})

	t.Run("explicit empty string disables", func(t *testing.T) {
		cfg, err := New(minimalProps(map[string]string{
			SSLConfigPrefix + SSLEndpointIdentificationAlgorithmConfig: "",
		}))
		require.NoError(t, err)
		assert.True(t, cfg.ShouldDisableHostnameVerification())
	})

	t.Run("explicit algorithm keeps verification", func(t *testing.T) {
		cfg, err := New(minimalProps(map[string]string{
			SSLConfigPrefix + SSLEndpointIdentificationAlgorithmConfig: "https",
		}))
		require.NoError(t, err)
		assert.False(t, cfg.ShouldDisableHostnameVerification())
	})
}

func TestNewCopiesRawProps(t *testing.T) {
	props := minimalProps(map[string]string{
		SSLConfigPrefix + SSLProtocolConfig: "TLSv1.3",
	})
	cfg, err := New(props)
	require.NoError(t, err)

	// Mutating the caller's map after construction must not change the view.
	props[SSLConfigPrefix+SSLProtocolConfig] = "TLSv1"
	ssl, err := cfg.SSLConfigs()
	require.NoError(t, err)
	assert.Equal(t, "TLSv1.3", ssl.String(SSLProtocolConfig))
}
