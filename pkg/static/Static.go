package static

// Directory Constants
const (
	ROOTDIR   = "objectsync"
	CONFIGDIR = "config"
	STOREDIR  = "store"
	LEGACYDIR = "legacy"
	LOGDIR    = "logs"
)

// Default Log Level
const DEFAULT_LOG_LEVEL = "info"

// Structure Paths
var STRUCTURE_CLIENT = []string{
	CONFIGDIR,
	STOREDIR,
	LOGDIR,
}

// Wire Operation Tags
const (
	OP_SET             = "Set"
	OP_DELETE          = "Delete"
	OP_INCREMENT       = "Increment"
	OP_ADD             = "Add"
	OP_ADD_UNIQUE      = "AddUnique"
	OP_REMOVE          = "Remove"
	OP_ADD_RELATION    = "AddRelation"
	OP_REMOVE_RELATION = "RemoveRelation"
	OP_BATCH           = "Batch"
)

// Wire Type Tags
const (
	TYPE_POINTER  = "Pointer"
	TYPE_RELATION = "Relation"
)

// Executor Constants
const (
	DEFAULT_MAX_RETRIES    = 4
	DEFAULT_RETRY_INTERVAL = "1s"
	DEFAULT_API_TIMEOUT    = "30s"
)

// Batch Constants
const (
	DEFAULT_BATCH_SIZE = 50
	BATCH_PATH         = "/batch"
)

// Distinguished Object Names
const (
	STORE_CURRENT_USER         = "currentUser"
	STORE_CURRENT_INSTALLATION = "currentInstallation"
)

// Class Constants
const (
	CLASS_USER         = "_User"
	CLASS_INSTALLATION = "_Installation"
	CLASS_SESSION      = "_Session"
)

// Header Constants
const (
	HEADER_APPLICATION_ID = "X-Objectsync-Application-Id"
	HEADER_CLIENT_KEY     = "X-Objectsync-Client-Key"
	HEADER_SESSION_TOKEN  = "X-Objectsync-Session-Token"
)
