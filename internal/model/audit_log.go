package model

import (
	"gorm.io/datatypes"
)

// AuditLog 写操作审计日志
// 由中间件在每个写请求完成后同步落一条，仅供运维排查，不对外提供接口
type AuditLog struct {
	BaseModel
	RequestID string         `gorm:"size:36;index"`
	Method    string         `gorm:"size:10;not null"`
	Path      string         `gorm:"size:255;not null"`
	Status    int            `gorm:"not null"`
	ClientIP  string         `gorm:"size:45"`
	LatencyMs int64          `gorm:"not null;default:0"`
	Payload   datatypes.JSON `gorm:"comment:请求体原文"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
