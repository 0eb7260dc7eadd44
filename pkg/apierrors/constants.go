package apierrors

const (
	MsgUnauthorized       = "unauthorized"
	MsgForbidden          = "forbidden"
	MsgInvalidCredentials = "invalidCredentials"
	MsgLoginDisabled      = "loginDisabled"
	MsgFailLogin          = "failLogin"
	MsgFailCurrentUser    = "failCurrentUser"

	MsgFailListTask         = "errorListTask"
	MsgInvalidTaskID        = "invalidTaskID"
	MsgInvalidTaskPayload   = "invalidTaskPayload"
	MsgTaskNotFound         = "taskNotFound"
	MsgFailCreateTask       = "failCreateTask"
	MsgFailUpdateTask       = "failUpdateTask"
	MsgFailDeleteTask       = "failDeleteTask"
	MsgFailUpdateTaskStatus = "failUpdateTaskStatus"

	MsgFailListClient       = "errorListClient"
	MsgInvalidClientID      = "invalidClientID"
	MsgInvalidClientPayload = "invalidClientPayload"
	MsgClientNotFound       = "clientNotFound"
	MsgFailCreateClient     = "failCreateClient"
	MsgFailUpdateClient     = "failUpdateClient"
	MsgFailDeleteClient     = "failDeleteClient"

	MsgFailListProject       = "errorListProject"
	MsgInvalidProjectID      = "invalidProjectID"
	MsgInvalidProjectPayload = "invalidProjectPayload"
	MsgProjectNotFound       = "projectNotFound"
	MsgFailCreateProject     = "failCreateProject"
	MsgFailUpdateProject     = "failUpdateProject"
	MsgFailDeleteProject     = "failDeleteProject"
	MsgFailLinkApplication   = "failLinkApplication"
	MsgFailUnlinkApplication = "failUnlinkApplication"

	MsgFailListApplication       = "errorListApplication"
	MsgInvalidApplicationID      = "invalidApplicationID"
	MsgInvalidApplicationPayload = "invalidApplicationPayload"
	MsgApplicationNotFound       = "applicationNotFound"
	MsgFailCreateApplication     = "failCreateApplication"
	MsgFailUpdateApplication     = "failUpdateApplication"
	MsgFailDeleteApplication     = "failDeleteApplication"

	MsgFailListComment       = "errorListComment"
	MsgInvalidCommentPayload = "invalidCommentPayload"
	MsgFailCreateComment     = "failCreateComment"

	MsgFailListActivity = "errorListActivity"

	MsgFailListNotification   = "errorListNotification"
	MsgInvalidNotificationID  = "invalidNotificationID"
	MsgNotificationNotFound   = "notificationNotFound"
	MsgFailUpdateNotification = "failUpdateNotification"

	MsgFailListTimeEntry       = "errorListTimeEntry"
	MsgInvalidTimeEntryID      = "invalidTimeEntryID"
	MsgInvalidTimeEntryPayload = "invalidTimeEntryPayload"
	MsgTimeEntryNotFound       = "timeEntryNotFound"
	MsgFailCreateTimeEntry     = "failCreateTimeEntry"
	MsgFailDeleteTimeEntry     = "failDeleteTimeEntry"

	MsgFailListUser         = "errorListUser"
	MsgInvalidUserID        = "invalidUserID"
	MsgInvalidUserPayload   = "invalidUserPayload"
	MsgUserNotFound         = "userNotFound"
	MsgEmailTaken           = "emailTaken"
	MsgFailCreateUser       = "failCreateUser"
	MsgFailUpdateUser       = "failUpdateUser"
	MsgFailDeleteUser       = "failDeleteUser"
	MsgFailListPermissions  = "errorListPermissions"
	MsgInvalidPermission    = "invalidPermissionPayload"
	MsgFailAssignPermission = "failAssignPermission"

	MsgFailListProduct       = "errorListProduct"
	MsgInvalidProductID      = "invalidProductID"
	MsgInvalidProductPayload = "invalidProductPayload"
	MsgProductNotFound       = "productNotFound"
	MsgFailCreateProduct     = "failCreateProduct"
	MsgFailUpdateProduct     = "failUpdateProduct"
	MsgFailDeleteProduct     = "failDeleteProduct"

	MsgFailListSubscription       = "errorListSubscription"
	MsgInvalidSubscriptionID      = "invalidSubscriptionID"
	MsgInvalidSubscriptionPayload = "invalidSubscriptionPayload"
	MsgSubscriptionNotFound       = "subscriptionNotFound"
	MsgFailCreateSubscription     = "failCreateSubscription"
	MsgFailUpdateSubscription     = "failUpdateSubscription"
	MsgFailDeleteSubscription     = "failDeleteSubscription"
)
