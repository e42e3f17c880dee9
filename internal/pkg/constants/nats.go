package constants

// NATS subjects for ledger lifecycle events
const (
	SubjectRecordConfirmed = "ledger.record.confirmed"
	SubjectRecordFailed    = "ledger.record.failed"
	SubjectRecordCancelled = "ledger.record.cancelled"
	SubjectReconcileAlert  = "ledger.reconcile.alert"
)
