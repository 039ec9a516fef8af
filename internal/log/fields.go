package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldAddress    = "address"
	FieldTxCount    = "tx_count"
	FieldProject    = "project_name"
	FieldEventID    = "event_id"
	FieldEventType  = "event_type"
	FieldDocPath    = "doc_path"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentAdvisor = "advisor"
	ComponentMemory  = "memory"
	ComponentLedger  = "ledger"
	ComponentHistory = "history"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpSave     = "save"
	OpChat     = "chat"
	OpGreet    = "greet"
	OpReplace  = "replace"
	OpAppend   = "append"
	OpList     = "list"
	OpPublish  = "publish"
	OpConsume  = "consume"
	OpSnapshot = "snapshot"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
