// Package advisory holds the pure advisory engine: threshold rules, disease
// risk, irrigation, fertilization and pricing. Every function here is a pure
// function of its arguments; nothing reads clocks, storage or the network, so
// all of it is safe for concurrent use.
package advisory
