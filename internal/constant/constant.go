package constant

// Activity event types published on every item mutation.
const (
	EventNoteCreated   = "NOTE_CREATED"
	EventNoteUpdated   = "NOTE_UPDATED"
	EventNoteArchived  = "NOTE_ARCHIVED"
	EventNoteRestored  = "NOTE_RESTORED"
	EventNoteTrashed   = "NOTE_TRASHED"
	EventNotePinToggle = "NOTE_PIN_TOGGLED"
	EventNoteDeleted   = "NOTE_DELETED"

	EventTodoCreated   = "TODO_CREATED"
	EventTodoUpdated   = "TODO_UPDATED"
	EventTodoArchived  = "TODO_ARCHIVED"
	EventTodoRestored  = "TODO_RESTORED"
	EventTodoTrashed   = "TODO_TRASHED"
	EventTodoPinToggle = "TODO_PIN_TOGGLED"
	EventTodoDeleted   = "TODO_DELETED"

	EventUserRegistered  = "USER_REGISTERED"
	EventUserLogin       = "USER_LOGIN"
	EventPasswordChanged = "PASSWORD_CHANGED"
	EventAccountDeleted  = "ACCOUNT_DELETED"
)

// ItemType values carried in activity event payloads.
const (
	ItemTypeNote = "note"
	ItemTypeTodo = "todo"
)

// ActivityTopic is the in-process watermill topic the audit consumer reads.
const ActivityTopic = "ACTIVITY_EVENTS"
