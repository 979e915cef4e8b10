package handler

// DI for all handlers.

import (
	ggdb "github.com/yumyai/cgcfinder/pkg/db"
)

type DBContext struct {
	Store *ggdb.ClusterDB
}
