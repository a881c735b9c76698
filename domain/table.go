package domain

type Table string

const (
	TableActivities  Table = "activities"
	TableAccounts    Table = "accounts"
	TableHealthCheck Table = "healthcheck"
)
