// Package config declares and validates the complete configuration surface
// of the Elasticsearch sink connector.
//
// The field registry is assembled exactly once at process start, from four
// independent builders (connector, data conversion, proxy and security
// fields), and is shared read-only by every task. New resolves the raw
// string properties supplied by the hosting framework into an immutable
// Config, applying defaults, type coercion, per-field validation and the
// cross-field proxy checks, so a malformed configuration fails before any
// connection is attempted.
package config

import (
	"fmt"
	"strings"

	"github.com/datalift/elasticsink/pkg/configdef"
)

const (
	connectorGroup  = "Connector"
	conversionGroup = "Data Conversion"
	proxyGroup      = "Proxy"
	securityGroup   = "Security"
)

// Def is the process-wide field registry of the connector. It is built once
// during package initialization and never mutated; Resolve only reads it.
var Def = baseConfigDef()

func baseConfigDef() *configdef.Registry {
	def := configdef.NewRegistry()
	addConnectorConfigs(def)
	addConversionConfigs(def)
	addProxyConfigs(def)
	addSecurityConfigs(def)
	return def
}

func addConnectorConfigs(def *configdef.Registry) {
	order := 0
	next := func() int { order++; return order }
	def.Define(configdef.Field{
		Key:          ConnectionURLConfig,
		Type:         configdef.TypeList,
		Required:     true,
		Validator:    configdef.NonEmptyList{},
		Importance:   configdef.ImportanceHigh,
		Doc:          connectionURLDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthLong,
		DisplayName:  "Connection URLs",
	}).Define(configdef.Field{
		Key:          ConnectionUsernameConfig,
		Type:         configdef.TypeString,
		Default:      nil,
		Importance:   configdef.ImportanceMedium,
		Doc:          connectionUsernameDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Connection Username",
	}).Define(configdef.Field{
		Key:          ConnectionPasswordConfig,
		Type:         configdef.TypePassword,
		Default:      nil,
		Importance:   configdef.ImportanceMedium,
		Doc:          connectionPasswordDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Connection Password",
	}).Define(configdef.Field{
		Key:          BatchSizeConfig,
		Type:         configdef.TypeInt,
		Default:      2000,
		Importance:   configdef.ImportanceMedium,
		Doc:          batchSizeDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Batch Size",
	}).Define(configdef.Field{
		Key:          MaxInFlightRequestsConfig,
		Type:         configdef.TypeInt,
		Default:      5,
		Importance:   configdef.ImportanceMedium,
		Doc:          maxInFlightRequestsDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Max In-flight Requests",
	}).Define(configdef.Field{
		Key:          MaxBufferedRecordsConfig,
		Type:         configdef.TypeInt,
		Default:      20000,
		Importance:   configdef.ImportanceLow,
		Doc:          maxBufferedRecordsDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Max Buffered Records",
	}).Define(configdef.Field{
		Key:          LingerMSConfig,
		Type:         configdef.TypeLong,
		Default:      int64(1),
		Importance:   configdef.ImportanceLow,
		Doc:          lingerMSDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Linger (ms)",
	}).Define(configdef.Field{
		Key:          FlushTimeoutMSConfig,
		Type:         configdef.TypeLong,
		Default:      int64(10000),
		Importance:   configdef.ImportanceLow,
		Doc:          flushTimeoutMSDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Flush Timeout (ms)",
	}).Define(configdef.Field{
		Key:          MaxRetriesConfig,
		Type:         configdef.TypeInt,
		Default:      5,
		Importance:   configdef.ImportanceLow,
		Doc:          maxRetriesDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Max Retries",
	}).Define(configdef.Field{
		Key:          RetryBackoffMSConfig,
		Type:         configdef.TypeLong,
		Default:      int64(100),
		Importance:   configdef.ImportanceLow,
		Doc:          retryBackoffMSDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Retry Backoff (ms)",
	}).Define(configdef.Field{
		Key:          ConnectionCompressionConfig,
		Type:         configdef.TypeBool,
		Default:      false,
		Importance:   configdef.ImportanceLow,
		Doc:          connectionCompressionDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Compression",
	}).Define(configdef.Field{
		Key:          MaxConnectionIdleTimeMSConfig,
		Type:         configdef.TypeInt,
		Default:      60000,
		Importance:   configdef.ImportanceLow,
		Doc:          maxConnectionIdleTimeMSDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Max Connection Idle Time",
	}).Define(configdef.Field{
		Key:          ConnectionTimeoutMSConfig,
		Type:         configdef.TypeInt,
		Default:      1000,
		Importance:   configdef.ImportanceLow,
		Doc:          connectionTimeoutMSDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Connection Timeout",
	}).Define(configdef.Field{
		Key:          ReadTimeoutMSConfig,
		Type:         configdef.TypeInt,
		Default:      3000,
		Importance:   configdef.ImportanceLow,
		Doc:          readTimeoutMSDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Read Timeout",
	}).Define(configdef.Field{
		Key:          AutoCreateIndicesAtStartConfig,
		Type:         configdef.TypeBool,
		Default:      true,
		Importance:   configdef.ImportanceLow,
		Doc:          autoCreateIndicesAtStartDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Create indices at startup",
	}).Define(configdef.Field{
		Key:          RetryOnConflictConfig,
		Type:         configdef.TypeInt,
		Default:      0,
		Importance:   configdef.ImportanceLow,
		Doc:          retryOnConflictDoc,
		Group:        connectorGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Retry on conflict",
	})
}

func addConversionConfigs(def *configdef.Registry) {
	order := 0
	next := func() int { order++; return order }
	def.Define(configdef.Field{
		Key:          TypeNameConfig,
		Type:         configdef.TypeString,
		Required:     true,
		Importance:   configdef.ImportanceHigh,
		Doc:          typeNameDoc,
		Group:        conversionGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Type Name",
	}).Define(configdef.Field{
		Key:          KeyIgnoreConfig,
		Type:         configdef.TypeBool,
		Default:      false,
		Importance:   configdef.ImportanceHigh,
		Doc:          keyIgnoreDoc,
		Group:        conversionGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Ignore Key mode",
	}).Define(configdef.Field{
		Key:          SchemaIgnoreConfig,
		Type:         configdef.TypeBool,
		Default:      false,
		Importance:   configdef.ImportanceLow,
		Doc:          schemaIgnoreDoc,
		Group:        conversionGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Ignore Schema mode",
	}).Define(configdef.Field{
		Key:          CompactMapEntriesConfig,
		Type:         configdef.TypeBool,
		Default:      true,
		Importance:   configdef.ImportanceLow,
		Doc:          compactMapEntriesDoc,
		Group:        conversionGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Compact Map Entries",
	}).Define(configdef.Field{
		Key:          TopicIndexMapConfig,
		Type:         configdef.TypeList,
		Default:      []string{},
		Importance:   configdef.ImportanceLow,
		Doc:          topicIndexMapDoc,
		Group:        conversionGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthLong,
		DisplayName:  "Topic to Index Map",
	}).Define(configdef.Field{
		Key:          TopicKeyIgnoreConfig,
		Type:         configdef.TypeList,
		Default:      []string{},
		Importance:   configdef.ImportanceLow,
		Doc:          topicKeyIgnoreDoc,
		Group:        conversionGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthLong,
		DisplayName:  "Topics for 'Ignore Key' mode",
	}).Define(configdef.Field{
		Key:          TopicSchemaIgnoreConfig,
		Type:         configdef.TypeList,
		Default:      []string{},
		Importance:   configdef.ImportanceLow,
		Doc:          topicSchemaIgnoreDoc,
		Group:        conversionGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthLong,
		DisplayName:  "Topics for 'Ignore Schema' mode",
	}).Define(configdef.Field{
		Key:          DropInvalidMessageConfig,
		Type:         configdef.TypeBool,
		Default:      false,
		Importance:   configdef.ImportanceLow,
		Doc:          dropInvalidMessageDoc,
		Group:        conversionGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthLong,
		DisplayName:  "Drop invalid messages",
	}).Define(configdef.Field{
		Key:          BehaviorOnNullValuesConfig,
		Type:         configdef.TypeString,
		Default:      string(DefaultBehaviorOnNullValues),
		Validator:    configdef.OneOf(BehaviorOnNullValuesList()...),
		Importance:   configdef.ImportanceLow,
		Doc:          behaviorOnNullValuesDoc,
		Group:        conversionGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Behavior for null-valued records",
	}).Define(configdef.Field{
		Key:          BehaviorOnMalformedDocsConfig,
		Type:         configdef.TypeString,
		Default:      string(DefaultBehaviorOnMalformedDoc),
		Validator:    configdef.OneOf(BehaviorOnMalformedDocList()...),
		Importance:   configdef.ImportanceLow,
		Doc:          behaviorOnMalformedDocsDoc,
		Group:        conversionGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Behavior on malformed documents",
	}).Define(configdef.Field{
		Key:          WriteMethodConfig,
		Type:         configdef.TypeString,
		Default:      string(DefaultWriteMethod),
		Validator:    configdef.OneOf(WriteMethodList()...),
		Importance:   configdef.ImportanceLow,
		Doc:          writeMethodDoc,
		Group:        conversionGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Write method",
	}).Define(configdef.Field{
		Key:          DocumentVersionTypeConfig,
		Type:         configdef.TypeString,
		Default:      string(DefaultDocumentVersionType),
		Validator:    configdef.OneOf(DocumentVersionTypeList()...),
		Importance:   configdef.ImportanceLow,
		Doc:          documentVersionTypeDoc,
		Group:        conversionGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthShort,
		DisplayName:  "Document version",
	})
}

func addProxyConfigs(def *configdef.Registry) {
	order := 0
	next := func() int { order++; return order }
	def.Define(configdef.Field{
		Key:          ProxyHostConfig,
		Type:         configdef.TypeString,
		Default:      "",
		Importance:   configdef.ImportanceLow,
		Doc:          proxyHostDoc,
		Group:        proxyGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthLong,
		DisplayName:  proxyHostDisplay,
	}).Define(configdef.Field{
		Key:          ProxyPortConfig,
		Type:         configdef.TypeInt,
		Default:      8080,
		Validator:    configdef.Between(1, 65535),
		Importance:   configdef.ImportanceLow,
		Doc:          proxyPortDoc,
		Group:        proxyGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthLong,
		DisplayName:  proxyPortDisplay,
	}).Define(configdef.Field{
		Key:          ProxyUsernameConfig,
		Type:         configdef.TypeString,
		Default:      "",
		Importance:   configdef.ImportanceLow,
		Doc:          proxyUsernameDoc,
		Group:        proxyGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthLong,
		DisplayName:  proxyUsernameDisplay,
	}).Define(configdef.Field{
		Key:          ProxyPasswordConfig,
		Type:         configdef.TypePassword,
		Default:      nil,
		Importance:   configdef.ImportanceLow,
		Doc:          proxyPasswordDoc,
		Group:        proxyGroup,
		OrderInGroup: next(),
		Width:        configdef.WidthLong,
		DisplayName:  proxyPasswordDisplay,
	})
}

func addSecurityConfigs(def *configdef.Registry) {
	def.Define(configdef.Field{
		Key:          SecurityProtocolConfig,
		Type:         configdef.TypeString,
		Default:      string(DefaultSecurityProtocol),
		Validator:    configdef.OneOf(SecurityProtocolList()...),
		Importance:   configdef.ImportanceMedium,
		Doc:          securityProtocolDoc,
		Group:        securityGroup,
		OrderInGroup: 1,
		Width:        configdef.WidthShort,
		DisplayName:  "Security protocol",
	})
	def.Embed(SSLConfigPrefix, securityGroup, def.Len()+2, clientSSLConfigDef())
}

// Config is a resolved, validated configuration of one sink task. It is
// created once at task startup and never mutated; accessors and derived
// views are pure reads, safe for any number of concurrent callers.
type Config struct {
	snapshot configdef.Snapshot
	// raw keeps the original properties so the embedded TLS namespace can be
	// re-parsed through its own registry.
	raw map[string]string
}

// New resolves raw properties against the connector registry and enforces
// the cross-field proxy invariants. On failure the returned error is one of
// configdef's four kinds and names the offending key(s).
func New(props map[string]string) (*Config, error) {
	snapshot, err := Def.Resolve(props)
	if err != nil {
		return nil, err
	}
	raw := make(map[string]string, len(props))
	for k, v := range props {
		raw[k] = v
	}
	cfg := &Config{snapshot: snapshot, raw: raw}
	if err := cfg.validateProxyConfigs(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateProxyConfigs enforces the invariants that span the proxy fields:
// credentials require a host, and username and password must be set
// together or not at all.
func (c *Config) validateProxyConfigs() error {
	username := c.snapshot.String(ProxyUsernameConfig)
	password := c.snapshot.Password(ProxyPasswordConfig)

	if !c.IsBasicProxyConfigured() {
		if username != "" || password != nil {
			return &configdef.ConflictError{
				Keys: []string{ProxyUsernameConfig, ProxyPasswordConfig, ProxyHostConfig},
				Message: fmt.Sprintf("%s and %s cannot be set without %s",
					ProxyUsernameConfig, ProxyPasswordConfig, ProxyHostConfig),
			}
		}
		return nil
	}
	if (username == "") != (password == nil) {
		return &configdef.ConflictError{
			Keys: []string{ProxyUsernameConfig, ProxyPasswordConfig},
			Message: fmt.Sprintf("both %s and %s must be set",
				ProxyUsernameConfig, ProxyPasswordConfig),
		}
	}
	return nil
}

// Snapshot exposes the underlying typed snapshot for consumers that read
// keys by contract.
func (c *Config) Snapshot() configdef.Snapshot {
	return c.snapshot
}

// SecurityProtocolValue returns the resolved transport security protocol.
func (c *Config) SecurityProtocolValue() SecurityProtocol {
	return SecurityProtocol(c.snapshot.String(SecurityProtocolConfig))
}

// Secured reports whether connections to the cluster use SSL.
func (c *Config) Secured() bool {
	return c.SecurityProtocolValue() == SecurityProtocolSSL
}

// IsBasicProxyConfigured reports whether a proxy host is configured.
func (c *Config) IsBasicProxyConfigured() bool {
	return c.snapshot.String(ProxyHostConfig) != ""
}

// IsProxyWithAuthenticationConfigured reports whether the proxy is
// configured with full credentials.
func (c *Config) IsProxyWithAuthenticationConfigured() bool {
	return c.IsBasicProxyConfigured() &&
		c.snapshot.String(ProxyUsernameConfig) != "" &&
		c.snapshot.Password(ProxyPasswordConfig) != nil
}

// SSLConfigs re-parses the raw properties under SSLConfigPrefix through the
// TLS sub-registry, producing the typed view the connection layer consumes.
// This is a second, narrower resolution pass scoped to one prefix and is
// independent of the top-level resolver.
func (c *Config) SSLConfigs() (configdef.Snapshot, error) {
	prefixed := make(map[string]string)
	for key, value := range c.raw {
		if strings.HasPrefix(key, SSLConfigPrefix) {
			prefixed[strings.TrimPrefix(key, SSLConfigPrefix)] = value
		}
	}
	return clientSSLConfigDef().Resolve(prefixed)
}

// ShouldDisableHostnameVerification reports whether the endpoint
// identification algorithm was explicitly set to the empty string. An
// absent key keeps the default algorithm and therefore keeps verification
// enabled.
func (c *Config) ShouldDisableHostnameVerification() bool {
	return c.snapshot.String(SSLConfigPrefix+SSLEndpointIdentificationAlgorithmConfig) == ""
}
