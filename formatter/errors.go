package formatter

import "github.com/cockroachdb/errors"

var (
	// ErrAlreadyInstalled is returned by InstallArgFormatter when an
	// argument formatter is already in place. The installed one stays.
	ErrAlreadyInstalled = errors.New("formatter: argument formatter already installed")

	// ErrArgFormatterDisabled is returned by InstallArgFormatter when the
	// formatter was built without the argument formatter capability.
	ErrArgFormatterDisabled = errors.New("formatter: custom argument formatters are disabled")

	// ErrTimestampsDisabled is returned by SetTimestampPrecision when the
	// formatter was built without timestamps.
	ErrTimestampsDisabled = errors.New("formatter: timestamps are disabled")

	// ErrNilArgFormatter is returned when installing a nil formatter
	ErrNilArgFormatter = errors.New("formatter: nil argument formatter")
)
