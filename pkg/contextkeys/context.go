package contextkeys

// Custom key type avoids collisions with other packages' context values.
type contextKey string

// DBContextKey stores a *gorm.DB (pool or transaction) in a context. Tests
// inject a transaction here so every request in a test case shares it.
const DBContextKey = contextKey("db")
