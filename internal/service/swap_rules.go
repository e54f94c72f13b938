package service

import "shiftswap/backend/internal/model"

// trigger 换班申请状态机的输入动作
type trigger string

const (
	triggerTargetAccept   trigger = "target_accept"
	triggerTargetReject   trigger = "target_reject"
	triggerManagerApprove trigger = "manager_approve"
	triggerManagerReject  trigger = "manager_reject"
	triggerHRApprove      trigger = "hr_approve"
	triggerHRReject       trigger = "hr_reject"
)

// triggerAllowed 状态转移表：当前状态下允许哪些动作
func triggerAllowed(status string, trig trigger) bool {
	switch status {
	case model.SwapStatusPendingTarget:
		return trig == triggerTargetAccept || trig == triggerTargetReject
	case model.SwapStatusPendingManager:
		return trig == triggerManagerApprove || trig == triggerManagerReject
	case model.SwapStatusPendingHR:
		return trig == triggerHRApprove || trig == triggerHRReject
	}
	return false
}

// nextStatus 计算动作生效后的新状态
// 主管通过后：需要跨部门审批则进入 pending_hr，否则直接 approved
func nextStatus(swap *model.SwapRequest, trig trigger) string {
	switch trig {
	case triggerTargetAccept:
		return model.SwapStatusPendingManager
	case triggerManagerApprove:
		if swap.RequiresCrossApproval {
			return model.SwapStatusPendingHR
		}
		return model.SwapStatusApproved
	case triggerHRApprove:
		return model.SwapStatusApproved
	case triggerTargetReject, triggerManagerReject, triggerHRReject:
		return model.SwapStatusRejected
	}
	return swap.Status
}

// authorized 权限门：动作与操作者身份的匹配检查
//
//	对方响应  → 必须是申请的 target 本人
//	主管审批  → 申请人所在部门的主管，或管理员
//	人事审批  → 人事角色，或管理员
func authorized(actor, requestor *model.User, swap *model.SwapRequest, trig trigger) bool {
	switch trig {
	case triggerTargetAccept, triggerTargetReject:
		return actor.UserID == swap.TargetID
	case triggerManagerApprove, triggerManagerReject:
		if actor.Role == model.RoleAdmin {
			return true
		}
		return actor.Role == model.RoleManager && actor.DepartmentID == requestor.DepartmentID
	case triggerHRApprove, triggerHRReject:
		return actor.Role == model.RoleHR || actor.Role == model.RoleAdmin
	}
	return false
}

// historyAction 动作对应的历史记录类型
func historyAction(trig trigger, newStatus string) string {
	switch trig {
	case triggerTargetAccept:
		return model.HistoryActionAccepted
	case triggerManagerApprove:
		if newStatus == model.SwapStatusPendingHR {
			return model.HistoryActionEscalated
		}
		return model.HistoryActionApproved
	case triggerHRApprove:
		return model.HistoryActionApproved
	}
	return model.HistoryActionRejected
}
