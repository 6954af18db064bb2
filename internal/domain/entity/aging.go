package entity

// AgingBucket clasificación de un documento respecto a la fecha de referencia.
type AgingBucket string

const (
	BucketOverdue       AgingBucket = "OVERDUE"
	BucketNotYetDue     AgingBucket = "NOT_YET_DUE"
	BucketCredit        AgingBucket = "CREDIT"
	BucketUndatedCredit AgingBucket = "UNDATED_CREDIT"
)
