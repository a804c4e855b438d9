// Package main provides the arogya CLI.
//
//	arogya serve           # start the API server
//	arogya migrate         # run migrations
//	arogya migrate:rollback
//	arogya migrate:status
//	arogya seed            # seed the default admin
//	arogya route:list      # list API routes
package main
