package config

import (
	"github.com/datalift/elasticsink/pkg/configdef"
)

// Client TLS vocabulary. These keys are defined once, without the
// connector-specific prefix, and embedded into the main registry under
// SSLConfigPrefix; SSLConfigs re-parses the prefixed raw input against this
// registry so the connection layer gets an independently typed view.
const (
	SSLProtocolConfig                        = "ssl.protocol"
	SSLProviderConfig                        = "ssl.provider"
	SSLCipherSuitesConfig                    = "ssl.cipher.suites"
	SSLEnabledProtocolsConfig                = "ssl.enabled.protocols"
	SSLKeystoreTypeConfig                    = "ssl.keystore.type"
	SSLKeystoreLocationConfig                = "ssl.keystore.location"
	SSLKeystorePasswordConfig                = "ssl.keystore.password"
	SSLKeyPasswordConfig                     = "ssl.key.password"
	SSLTruststoreTypeConfig                  = "ssl.truststore.type"
	SSLTruststoreLocationConfig              = "ssl.truststore.location"
	SSLTruststorePasswordConfig              = "ssl.truststore.password"
	SSLKeymanagerAlgorithmConfig             = "ssl.keymanager.algorithm"
	SSLTrustmanagerAlgorithmConfig           = "ssl.trustmanager.algorithm"
	SSLEndpointIdentificationAlgorithmConfig = "ssl.endpoint.identification.algorithm"
	SSLSecureRandomImplementationConfig      = "ssl.secure.random.implementation"
)

// Defaults for the TLS vocabulary. They mirror the upstream client-SSL
// support verbatim so that properties files written for the original
// connector keep their meaning.
const (
	defaultSSLProtocol                        = "TLSv1.2"
	defaultSSLKeystoreType                    = "JKS"
	defaultSSLTruststoreType                  = "JKS"
	defaultSSLKeymanagerAlgorithm             = "SunX509"
	defaultSSLTrustmanagerAlgorithm           = "PKIX"
	defaultSSLEndpointIdentificationAlgorithm = "https"
)

// addClientSSLSupport defines the generic client TLS vocabulary on def. The
// group is left to the embedding site.
func addClientSSLSupport(def *configdef.Registry) {
	order := 0
	next := func() int { order++; return order }
	def.Define(configdef.Field{
		Key:          SSLProtocolConfig,
		Type:         configdef.TypeString,
		Default:      defaultSSLProtocol,
		Importance:   configdef.ImportanceMedium,
		Doc:          "The TLS protocol used to generate the security context.",
		OrderInGroup: next(),
		Width:        configdef.WidthMedium,
		DisplayName:  "TLS Protocol",
	}).Define(configdef.Field{
		Key:          SSLProviderConfig,
		Type:         configdef.TypeString,
		Default:      nil,
		Importance:   configdef.ImportanceMedium,
		Doc:          "The name of the security provider used for TLS connections. Default is the default security provider of the runtime.",
		OrderInGroup: next(),
		Width:        configdef.WidthMedium,
		DisplayName:  "TLS Provider",
	}).Define(configdef.Field{
		Key:          SSLCipherSuitesConfig,
		Type:         configdef.TypeList,
		Default:      nil,
		Importance:   configdef.ImportanceLow,
		Doc:          "A list of cipher suites. By default all the available cipher suites are supported.",
		OrderInGroup: next(),
		Width:        configdef.WidthLong,
		DisplayName:  "Cipher Suites",
	}).Define(configdef.Field{
		Key:          SSLEnabledProtocolsConfig,
		Type:         configdef.TypeList,
		Default:      []string{"TLSv1.2", "TLSv1.1", "TLSv1"},
		Importance:   configdef.ImportanceMedium,
		Doc:          "The list of protocols enabled for TLS connections.",
		OrderInGroup: next(),
		Width:        configdef.WidthLong,
		DisplayName:  "Enabled Protocols",
	}).Define(configdef.Field{
		Key:          SSLKeystoreTypeConfig,
		Type:         configdef.TypeString,
		Default:      defaultSSLKeystoreType,
		Importance:   configdef.ImportanceMedium,
		Doc:          "The file format of the key store file.",
		OrderInGroup: next(),
		Width:        configdef.WidthMedium,
		DisplayName:  "Keystore Type",
	}).Define(configdef.Field{
		Key:          SSLKeystoreLocationConfig,
		Type:         configdef.TypeString,
		Default:      nil,
		Importance:   configdef.ImportanceMedium,
		Doc:          "The location of the key store file. Optional; used for two-way client authentication.",
		OrderInGroup: next(),
		Width:        configdef.WidthLong,
		DisplayName:  "Keystore Location",
	}).Define(configdef.Field{
		Key:          SSLKeystorePasswordConfig,
		Type:         configdef.TypePassword,
		Default:      nil,
		Importance:   configdef.ImportanceMedium,
		Doc:          "The store password for the key store file. Only needed if a key store location is configured.",
		OrderInGroup: next(),
		Width:        configdef.WidthMedium,
		DisplayName:  "Keystore Password",
	}).Define(configdef.Field{
		Key:          SSLKeyPasswordConfig,
		Type:         configdef.TypePassword,
		Default:      nil,
		Importance:   configdef.ImportanceMedium,
		Doc:          "The password of the private key in the key store file.",
		OrderInGroup: next(),
		Width:        configdef.WidthMedium,
		DisplayName:  "Key Password",
	}).Define(configdef.Field{
		Key:          SSLTruststoreTypeConfig,
		Type:         configdef.TypeString,
		Default:      defaultSSLTruststoreType,
		Importance:   configdef.ImportanceMedium,
		Doc:          "The file format of the trust store file.",
		OrderInGroup: next(),
		Width:        configdef.WidthMedium,
		DisplayName:  "Truststore Type",
	}).Define(configdef.Field{
		Key:          SSLTruststoreLocationConfig,
		Type:         configdef.TypeString,
		Default:      nil,
		Importance:   configdef.ImportanceMedium,
		Doc:          "The location of the trust store file.",
		OrderInGroup: next(),
		Width:        configdef.WidthLong,
		DisplayName:  "Truststore Location",
	}).Define(configdef.Field{
		Key:          SSLTruststorePasswordConfig,
		Type:         configdef.TypePassword,
		Default:      nil,
		Importance:   configdef.ImportanceMedium,
		Doc:          "The password for the trust store file. If a password is not set, the trust store is still used but integrity checking is disabled.",
		OrderInGroup: next(),
		Width:        configdef.WidthMedium,
		DisplayName:  "Truststore Password",
	}).Define(configdef.Field{
		Key:          SSLKeymanagerAlgorithmConfig,
		Type:         configdef.TypeString,
		Default:      defaultSSLKeymanagerAlgorithm,
		Importance:   configdef.ImportanceLow,
		Doc:          "The algorithm used by the key manager for TLS connections.",
		OrderInGroup: next(),
		Width:        configdef.WidthMedium,
		DisplayName:  "Keymanager Algorithm",
	}).Define(configdef.Field{
		Key:          SSLTrustmanagerAlgorithmConfig,
		Type:         configdef.TypeString,
		Default:      defaultSSLTrustmanagerAlgorithm,
		Importance:   configdef.ImportanceLow,
		Doc:          "The algorithm used by the trust manager for TLS connections.",
		OrderInGroup: next(),
		Width:        configdef.WidthMedium,
		DisplayName:  "Trustmanager Algorithm",
	}).Define(configdef.Field{
		Key:          SSLEndpointIdentificationAlgorithmConfig,
		Type:         configdef.TypeString,
		Default:      defaultSSLEndpointIdentificationAlgorithm,
		Importance:   configdef.ImportanceLow,
		Doc:          "The endpoint identification algorithm used to validate the server hostname against the server certificate. Set to an empty string to disable hostname verification.",
		OrderInGroup: next(),
		Width:        configdef.WidthMedium,
		DisplayName:  "Endpoint Identification Algorithm",
	}).Define(configdef.Field{
		Key:          SSLSecureRandomImplementationConfig,
		Type:         configdef.TypeString,
		Default:      nil,
		Importance:   configdef.ImportanceLow,
		Doc:          "The secure random number generator implementation used for TLS operations.",
		OrderInGroup: next(),
		Width:        configdef.WidthMedium,
		DisplayName:  "Secure Random Implementation",
	})
}

// clientSSLConfigDef builds a fresh registry holding only the TLS
// vocabulary, used both for embedding and for the narrower SSLConfigs
// resolution pass.
func clientSSLConfigDef() *configdef.Registry {
	def := configdef.NewRegistry()
	addClientSSLSupport(def)
	return def
}
