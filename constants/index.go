package constants

// Roles
const (
	ROLE_ADMIN  = "admin"
	ROLE_WAITER = "waiter"
)

var ROLE = []string{ROLE_ADMIN, ROLE_WAITER}

// Table status
const (
	TABLE_FREE     = "free"
	TABLE_OCCUPIED = "occupied"
)

// Order status
const (
	ORDER_OPEN   = "open"
	ORDER_CLOSED = "closed"
)

// Payment methods
const (
	PAYMENT_CASH   = "cash"
	PAYMENT_PIX    = "pix"
	PAYMENT_DEBIT  = "debit"
	PAYMENT_CREDIT = "credit"
)

var PAYMENT_METHOD = []string{PAYMENT_CASH, PAYMENT_PIX, PAYMENT_DEBIT, PAYMENT_CREDIT}

// Shared response messages
const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_INPUT                = "Invalid input"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read validated input"
	NOT_FOUND_RECORDS          = "Record not found"
	NOT_ADMIN                  = "Admin role required"
	MISSING_LOGIN_INPUT        = "Email and password are required"
	INVALID_CREDENTIALS        = "Email or password is incorrect"
	ACCOUNT_NOT_ACTIVE         = "Account is deactivated"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	ROLE_NOT_EXISTS            = "Role does not exist"
	PAYMENT_METHOD_NOT_EXISTS  = "Payment method does not exist"
	CAN_NOT_HASH_PASSWORD      = "Cannot hash password"
	EMAIL_ALREADY_EXISTS       = "Email already registered"
	ORDER_ALREADY_CLOSED       = "Order is already closed"
	TABLE_ALREADY_OCCUPIED     = "Table already has an open order"
)
