package model

import (
	"time"

	"gorm.io/datatypes"
)

// ReconcileRun 对应 reconcile_runs 表，记录每次重建的汇总（不参与重建本身）
type ReconcileRun struct {
	ID             uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RunUUID        string         `gorm:"column:run_uuid;type:varchar(64);uniqueIndex;not null" json:"run_id"`
	Trigger        string         `gorm:"column:trigger_source;type:varchar(16);not null" json:"trigger"` // cli / http
	StartedAt      time.Time      `gorm:"column:started_at;type:timestamp;not null" json:"started_at"`
	FinishedAt     time.Time      `gorm:"column:finished_at;type:timestamp;not null" json:"finished_at"`
	TotalRows      int            `gorm:"column:total_rows;type:int;not null;default:0" json:"total_rows"`
	FailedSubjects int            `gorm:"column:failed_subjects;type:int;not null;default:0" json:"failed_subjects"`
	Report         datatypes.JSON `gorm:"column:report;type:jsonb;not null" json:"report"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

const TableReconcileRuns = "reconcile_runs"

func (ReconcileRun) TableName() string { return TableReconcileRuns }
