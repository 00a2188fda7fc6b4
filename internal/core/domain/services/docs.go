// Package services holds the stateless domain services of the order pipeline:
//   - OrderValidator: turns raw candidates into validated orders, logging each rejection
//   - OrderFilter: selects the orders of one region inside a closed 30-minute delivery window
package services
