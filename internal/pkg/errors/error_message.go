package errors

/*
	Error message and suggestions message associated with them
*/

const (
	// context store
	CorruptedConfigErrorMsg    = "config file \"%s\" is corrupted: %v"
	CorruptedConfigSuggestions = "Repair \"%s\" by hand, or remove it and re-create your contexts with `kcctl config context set`."
	ContextNotFoundErrorMsg    = "context \"%s\" does not exist"
	ContextNotFoundSuggestions = "List the available contexts with `kcctl config context list`."
	NoContextErrorMsg          = "no current context is set"
	NoContextSuggestions       = "Register a cluster with `%s config context set <name> --cluster <url>`, then select it with `%s config context use <name>`.\nAlternatively pass `--context <name>` or set KCCTL_CONTEXT."
	InvalidContextErrorMsg     = "invalid context \"%s\": %s"
	InvalidContextSuggestions  = "A context needs an absolute http(s) cluster URL, and a username and password are given together or not at all."
	ReservedContextNameReason  = "the name is reserved"
	EmptyContextNameReason     = "the name must not be empty"
	MissingClusterURLReason    = "no cluster URL given"
	InvalidClusterURLReason    = "cluster URL \"%s\" is not an absolute http(s) URL"
	UnpairedCredentialsReason  = "username and password must be set together"
	UnableToLoadConfigErrorMsg = "unable to read config file \"%s\""
	UnableToSaveConfigErrorMsg = "unable to save config file \"%s\""
	ConfigSchemaViolationMsg   = "document does not match the expected shape: %s"
	CurrentContextNotFoundMsg  = "current context \"%s\" does not exist"
	CurrentContextSuggestions  = "Select an existing context with `kcctl config context use <name>`, or list them with `kcctl config context list`."

	// apply command
	MissingConnectorNameErrorMsg         = "connector configuration \"%s\" has no \"name\" property"
	MissingConnectorNameNoSourceErrorMsg = "connector configuration has no \"name\" property"
	MissingConnectorNameSuggestions      = "Add a \"name\" entry to the configuration, or use the {\"name\": ..., \"config\": {...}} form."
	MissingConnectorClassErrorMsg        = "connector configuration \"%s\" has no \"connector.class\" property"
	MissingConnectorClassSuggestions     = "Add a \"connector.class\" entry naming the connector implementation."
	EmptyConfigFileErrorMsg              = "connector config file \"%s\" is empty"
	UnreadableConfigFileErrorMsg         = "unable to read connector config \"%s\""
	MalformedConfigFileErrorMsg          = "connector config \"%s\" is not a JSON object"
	NestedConfigValueErrorMsg            = "connector config \"%s\": value of \"%s\" must be a string, number or boolean"
	NoConfigFilesErrorMsg                = "no connector configurations given"
	NoConfigFilesSuggestions             = "Pass one or more files or directories with `--file`, or `-` to read from stdin."
	BatchApplyErrorMsg                   = "%d of %d connector configurations failed to apply"
	InvalidParallelismErrorMsg           = "parallelism must be at least 1, got %d"

	// connect client
	ClusterUnreachableErrorMsg    = "unable to reach Kafka Connect cluster at %s: %v"
	ClusterUnreachableSuggestions = "Check that the worker at %s is running and reachable, or raise `--timeout`."
	ServerErrorMsg                = "Kafka Connect returned HTTP %d: %s"
	ServerErrorNoMessageMsg       = "Kafka Connect returned HTTP %d"
	ConnectorNotFoundErrorMsg     = "connector \"%s\" does not exist"
	ConnectorNotFoundSuggestions  = "List the connectors of the current cluster with `kcctl connector list`."
	MalformedResponseErrorMsg     = "unable to decode response from %s"

	// output
	InvalidFlagValueErrorMsg    = "invalid value \"%s\" for flag `--%s`"
	InvalidFlagValueSuggestions = "The possible values for flag `%s` are: %s."
)
