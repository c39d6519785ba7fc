/*
Package utils provides the decorators every tradevault transaction passes
through: panic recovery, logging and savepoints.
*/
package utils
