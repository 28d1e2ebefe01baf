//go:generate go tool stringer -type=Environment
package api

type Environment int

const (
	LOCAL Environment = iota
	PROD
)
