// Package logger provides structured logging for seqkit tools using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers carrying structured fields. The library packages
// (seq, maybe, jsonm, jinq) never log; callers that want element tracing
// attach a logger through seq.Tap.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("gen")
//	log.Info("generated", logger.Fields("count", 10))
package logger
