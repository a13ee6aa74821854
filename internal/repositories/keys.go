package repositories

// Storage keys shared with the browser client.
const (
	UsersKey              = "blueforce_users"
	CurrentUserKey        = "blueforce_current_user"
	PreferredLanguageKey  = "preferredLanguage"
	AdminAuthenticatedKey = "adminAuthenticated"
	MassHiredWorkersKey   = "massHiredWorkers"
	MessagesKey           = "employerToWorkerMessages"
	WorkerSkillVideoKey   = "workerSkillVideo"
	WorkerAvailabilityKey = "workerAvailability"
)
