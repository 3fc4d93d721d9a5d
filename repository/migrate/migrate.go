// Package migrate prepares the backing store: tables for MySQL, indexes for
// Mongo. Every step is safe to run repeatedly.
package migrate

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/echobody/constant"
	planRepo "github.com/muhammadheryan/echobody/repository/plan"
	userRepo "github.com/muhammadheryan/echobody/repository/user"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const createUserTable = `CREATE TABLE IF NOT EXISTS %s (
	id CHAR(36) NOT NULL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	gender VARCHAR(32) NULL,
	date_of_birth DATETIME NULL,
	email VARCHAR(255) NULL,
	password_hash VARCHAR(255) NULL,
	auth_token TEXT NULL,
	created_at DATETIME(3) NOT NULL,
	last_login DATETIME(3) NULL,
	health JSON NULL,
	device JSON NULL,
	INDEX idx_user_email (email)
)`

const createPlanTable = `CREATE TABLE IF NOT EXISTS %s (
	id CHAR(36) NOT NULL PRIMARY KEY,
	user_id VARCHAR(64) NOT NULL,
	ai_response LONGTEXT NOT NULL,
	timestamp DATETIME(3) NOT NULL,
	INDEX idx_%s_user_ts (user_id, timestamp)
)`

// Statements returns the MySQL DDL in execution order.
func Statements() []string {
	stmts := []string{fmt.Sprintf(createUserTable, userRepo.TableName)}
	for _, kind := range []constant.PlanKind{constant.PlanKindMeal, constant.PlanKindWorkout} {
		table := planRepo.TableName(kind)
		stmts = append(stmts, fmt.Sprintf(createPlanTable, table, table))
	}
	return stmts
}

// MySQL creates the user and plan tables.
func MySQL(ctx context.Context, conn *sqlx.DB) error {
	for _, stmt := range Statements() {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Mongo creates the lookup indexes: users by email, plans by owner and time.
func Mongo(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(userRepo.CollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_1"),
	})
	if err != nil {
		return err
	}

	for _, kind := range []constant.PlanKind{constant.PlanKindMeal, constant.PlanKindWorkout} {
		_, err := db.Collection(planRepo.CollectionName(kind)).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: 1}},
			Options: options.Index().SetName("userId_1_timestamp_1"),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
