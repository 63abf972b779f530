// Package observability traces seqkit commands with OpenTelemetry.
//
// Each command run gets one span and is counted with its status and wall
// time; sequences printed by a command report every element they pull.
// Export is off by default:
//
//	telemetry:
//	  enabled: true
//	  endpoint: localhost:4318
//	  insecure: true
package observability
