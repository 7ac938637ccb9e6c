package errors

const (
	// apply command
	CreatedConnectorMsg       = "Created connector %s\n"
	UpdatedConnectorMsg       = "Updated connector %s\n"
	ValidationFailedMsg       = "Validation failed for connector %s:\n"
	ValidationFieldErrorMsg   = "  %s: %s\n"
	ValidationGeneralErrorMsg = "  %s\n"
	FailedToApplyMsg          = "Failed to apply %s: %s\n"

	// connector commands
	DeletedConnectorMsg = "Deleted connector %s\n"
	AbsentConnectorMsg  = "Connector %s does not exist, nothing to delete\n"

	// config context commands
	UsingContextMsg      = "Using context \"%s\"\n"
	SetContextMsg        = "Context \"%s\" now points at %s\n"
	DeletedContextMsg    = "Deleted context \"%s\"\n"
	NoContextsDefinedMsg = "No contexts defined\n"
)
