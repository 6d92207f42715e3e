package iexecschema

import logging "github.com/ipfs/go-log/v2"

// LoggerPrefix is shared by every logger of this module so levels can be set
// in one call.
const LoggerPrefix = "iexecschema"

var log = logging.Logger(LoggerPrefix)
