// Package connectors provides the document sources the extraction service
// reads project page dumps from.
//
// Only the local filesystem is supported; see the filesystem subpackage.
package connectors
