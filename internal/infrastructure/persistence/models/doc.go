// Package models contains the GORM persistence models for the marketplace
// tables. Domain entities stay free of ORM tags; each model converts to and
// from its entity with ToDomain / FromDomain.
package models
