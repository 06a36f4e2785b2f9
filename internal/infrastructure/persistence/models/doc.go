// Package models contains the GORM persistence models behind the SQLite ledger.
// They carry all table and column annotations so that the marketplace domain
// types stay free of ORM tags; ToDomain and the *FromDomain builders convert
// between the two.
package models
