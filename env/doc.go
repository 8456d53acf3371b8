/*
Package env provides an interface-based abstraction for environment variable
access, so logger bootstrap code can be tested without touching the real
process environment.

# Basic Usage

	reader := &env.OSReader{}
	value, ok := reader.LookupEnv("GO_LOG")

# Testing

A generated mock lives in the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().LookupEnv("GO_LOG").Return("debug", true)
*/
package env
