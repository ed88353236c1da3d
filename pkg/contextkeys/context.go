package contextkeys

type contextKey string

// DBContextKey is where DBMiddleware stores the *gorm.DB (pool or transaction).
const DBContextKey = contextKey("db")

// UserContextKey is where the auth middleware stores the resolved *models.User.
const UserContextKey = contextKey("user")

// UserIDContextKey holds the resolved user id as a string.
const UserIDContextKey = contextKey("userID")

// TokenContextKey holds the bearer token the request was authenticated with.
const TokenContextKey = contextKey("token")
