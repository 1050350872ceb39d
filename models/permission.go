package models

// Permission holds the per-role access flags for a single route key.
// Routes without a stored record are open to every role.
type Permission struct {
	Route         string `bson:"route" json:"route"`
	AdminAccess   bool   `bson:"admin_access" json:"admin_access"`
	ManagerAccess bool   `bson:"manager_access" json:"manager_access"`
	UserAccess    bool   `bson:"user_access" json:"user_access"`
}
