package errs

// Reasons a render produced nothing. None of them reach the page: the
// renderer logs them and leaves the container empty.
var (
	ErrNoContainer = New("chart container not found")

	ErrDegenerateGeometry = New("no plot area left for")

	ErrEmptyData = New("no data to draw")

	ErrInvalidData = New("invalid data point")
)

// ErrNothingDrawn is returned by off-screen renders that mounted no chart.
var ErrNothingDrawn = New("nothing drawn")
