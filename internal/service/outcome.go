package service

// WriteStatus describes one side of the dual write.
type WriteStatus string

const (
	WriteOK      WriteStatus = "ok"
	WriteErr     WriteStatus = "err"
	WriteSkipped WriteStatus = "skipped"
)

// SaveOutcome is the combined result of a plan save. The two writes are not
// transactional: local is attempted first and is authoritative, remote is
// best-effort. Callers branch on the pair and must never assume atomicity.
type SaveOutcome struct {
	Local     WriteStatus
	Remote    WriteStatus
	RemoteErr error
	RowCount  int
}

// FullySaved reports that both writes succeeded.
func (o SaveOutcome) FullySaved() bool {
	return o.Local == WriteOK && o.Remote == WriteOK
}

// LocalOnly reports that the plan is durable locally but the remote write
// was skipped or failed.
func (o SaveOutcome) LocalOnly() bool {
	return o.Local == WriteOK && o.Remote != WriteOK
}

// Describe renders a user-facing summary of the outcome.
func (o SaveOutcome) Describe() string {
	switch {
	case o.FullySaved():
		return "saved locally and to the remote database"
	case o.Local == WriteOK && o.Remote == WriteSkipped:
		return "saved locally (remote database not configured, skipped)"
	case o.Local == WriteOK:
		return "saved locally, remote save failed"
	default:
		return "save failed"
	}
}
