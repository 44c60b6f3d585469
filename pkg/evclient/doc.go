// Package evclient provides the main entry point for creating easyVerein API clients
package evclient
