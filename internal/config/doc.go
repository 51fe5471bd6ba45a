// Package config reads the location recorder configuration file and decodes
// it into a schema-less Document. The file lives at a fixed path; the loader
// opens it, reads it to completion and closes it before decoding.
package config
