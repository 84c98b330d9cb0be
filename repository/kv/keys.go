package kv

// Store keys. Accounts and the session snapshot live under fixed keys; each
// account's tasks live under a key parameterized by the account id.
const (
	accountsKey = "undo/accounts"
	sessionKey  = "undo/session"
	tasksPrefix = "undo/tasks/"
)

func tasksKey(accountID string) string {
	return tasksPrefix + accountID
}
