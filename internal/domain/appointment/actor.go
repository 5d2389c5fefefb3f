package appointment

// Actor is the authenticated operator behind a back-office request. The
// HTTP layer builds it from the verified token and passes it explicitly.
type Actor struct {
	OperatorID uint
	Role       string
}
