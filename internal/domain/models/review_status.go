package models

// 留言、反馈与分类申请共用的审核状态机: pending -> approved|rejected
// rejected和删除都是终态
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// IsReviewSettled 审核是否已有终态结论
func IsReviewSettled(status string) bool {
	return status == ReviewStatusApproved || status == ReviewStatusRejected
}
