package commands

// SearchStart exports searchStart for testing.
var SearchStart = searchStart //nolint:gochecknoglobals // test export
