package domain

// Reply keys are rendered as embeds through their .title and .message attributes.
const (
	KeyUniverseCreated               = "create_universe__universe_successfully_created"
	KeyUniverseAlreadyExists         = "create_universe__already_exist_for_this_server"
	KeyUniverseLimitCheckFailed      = "create_universe__check_universe_limit_failed"
	KeyUniverseLimitReached          = "create_universe__universe_limit_reached"
	KeyUniverseGetServerFailed       = "create_universe__get_server_failed"
	KeyUniverseInsertFailed          = "create_universe__universe_insert_failed"
	KeyUniverseServerInsertFailed    = "create_universe__server_insert_failed"
	KeyUniverseSpeedStatInsertFailed = "create_universe__speed_stat_insert_failed"

	KeyAddServerAlreadyBound     = "add_server_to_universe__already_bind"
	KeyAddServerUnavailable      = "add_server_to_universe__universes_unavailable"
	KeyAddServerLinked           = "add_server_to_universe__guild_linked"
	KeyAddServerUniverseNotFound = "add_server_to_universe__universe_not_found"
	KeyAddServerInsertFailed     = "add_server_to_universe__server_insert_failed"
	KeyAddServerSelectionExpired = "add_server_to_universe__selection_expired"
	KeyServerLimitReached        = "exceed_limit_number_of_servers_per_universe"
	KeyServerLimitCheckFailed    = "universe__check_server_limit_failed"

	KeyPlaceCreated          = "create_place__success"
	KeyPlaceServerNotFound   = "create_place__server_not_found"
	KeyPlaceDatabaseError    = "create_place__database_not_found"
	KeyPlaceRoleNotCreated   = "create_place__role_not_created"
	KeyPlaceRollbackComplete = "create_place__rollback_complete"
	KeyPlaceLimitReached     = "create_place__limit_reached"
	KeyPlaceOneNotFound      = "create_place__place_one_not_found"
	KeyPlaceTwoNotFound      = "create_place__place_two_not_found"
	KeyRoleRollbackFailed    = "create_role__rollback_failed"

	KeyRoadCreated                         = "create_road__success"
	KeyRoadServerNotFound                  = "create_road__server_not_found"
	KeyRoadDatabaseError                   = "create_road__database_error"
	KeyRoadSamePlace                       = "create_road__same_place"
	KeyRoadCategoryMissing                 = "create_road__road_category_missing"
	KeyRoadLimitReached                    = "create_road__limit_reached"
	KeyRoadRoleCreationFailed              = "create_road__role_creation_failed"
	KeyRoadChannelFailedRollbackSuccess    = "create_road__create_channel_failed_rollback_success"
	KeyRoadChannelFailedRollbackFailed     = "create_road__create_channel_failed_rollback_failed"
	KeyRoadInsertFailedRollbackSuccess     = "create_road__insert_road_failed_rollback_success"
	KeyRoadInsertFailedRollbackRoleFailed  = "create_road__insert_road_failed_rollback_role_failed"
	KeyRoadInsertFailedRollbackChannelFail = "create_road__insert_road_failed_rollback_channel_failed"

	KeyGuildOnly       = "command__guild_only"
	KeyUnexpectedError = "command__unexpected_error"
	KeyNotYourPrompt   = "command__not_your_prompt"
)

// Text keys are rendered as plain strings.
const (
	KeySetupSuccessTitle      = "setup__setup_success_title"
	KeySetupSuccessMessage    = "setup__setup_success_message"
	KeySetupErrorTitle        = "setup__setup_error_title"
	KeySetupErrorMessage      = "setup__setup_error_message"
	KeySetupUniverseNotFound  = "setup__universe_not_found"
	KeySetupServerNotFound    = "setup__server_not_found"
	KeySetupCanceled          = "setup__canceled"
	KeySetupTimeout           = "setup__server_already_setup_timeout"
	KeySetupContinueMessage   = "continue_setup_message"
	KeySetupCancelButton      = "cancel_setup"
	KeySetupContinueButton    = "continue_setup"
	KeySetupRollbackFailed    = "setup__rollback_failed"
	KeySetupReorderFailed     = "setup__reorder_went_wrong"
	KeySetupServerUpdate      = "setup__server_update_failed"
	KeySetupChannelsFailed    = "setup__channel_setup_failed"
	KeySetupAdminRole         = "setup__admin_role_not_created"
	KeySetupModeratorRole     = "setup__moderator_role_not_created"
	KeySetupSpectatorRole     = "setup__spectator_role_not_created"
	KeySetupPlayerRole        = "setup__player_role_not_created"
	KeySetupRoadCategory      = "setup__road_category_not_created"
	KeySetupAdminCategory     = "setup__admin_category_not_created"
	KeySetupNRPCategory       = "setup__nrp_category_not_created"
	KeySetupRPCategory        = "setup__rp_category_not_created"
	KeySetupLogChannel        = "setup__log_channel_not_created"
	KeySetupCommandsChannel   = "setup__commands_channel_not_created"
	KeySetupModerationChannel = "setup__moderation_channel_not_created"
	KeySetupNRPGeneralChannel = "setup__nrp_general_channel_not_created"
	KeySetupCharacterChannel  = "setup__rp_character_channel_not_created"
	KeySetupWikiChannel       = "setup__wiki_channel_not_created"

	KeyChooseUniverse = "choose_universe"
	KeyStartMessage   = "start_message"
	KeyPingPong       = "ping__pong"
	KeySupport        = "support"
	KeyReplyFailed    = "reply__reply_failed"

	KeyAdminRoleName          = "admin_role_name"
	KeyModeratorRoleName      = "moderator_role_name"
	KeySpectatorRoleName      = "spectator_role_name"
	KeyPlayerRoleName         = "player_role_name"
	KeyRoadCategoryName       = "road_channel_name"
	KeyAdminCategoryName      = "admin_category_name"
	KeyNRPCategoryName        = "nrp_category_name"
	KeyRPCategoryName         = "rp_category_name"
	KeyLogChannelName         = "log_channel_name"
	KeyCommandsChannelName    = "commands_channel_name"
	KeyModerationChannelName  = "moderation_channel_name"
	KeyNRPGeneralChannelName  = "nrp_general_channel_name"
	KeyRPCharacterChannelName = "rp_character_channel_name"
	KeyRPWikiChannelName      = "rp_wiki_channel_name"
)

// ReplyKeys lists every key rendered through .title and .message.
func ReplyKeys() []string {
	return []string{
		KeyUniverseCreated, KeyUniverseAlreadyExists, KeyUniverseLimitCheckFailed,
		KeyUniverseLimitReached, KeyUniverseGetServerFailed, KeyUniverseInsertFailed,
		KeyUniverseServerInsertFailed, KeyUniverseSpeedStatInsertFailed,
		KeyAddServerAlreadyBound, KeyAddServerUnavailable, KeyAddServerLinked,
		KeyAddServerUniverseNotFound, KeyAddServerInsertFailed, KeyAddServerSelectionExpired,
		KeyServerLimitReached, KeyServerLimitCheckFailed,
		KeyPlaceCreated, KeyPlaceServerNotFound, KeyPlaceDatabaseError, KeyPlaceRoleNotCreated,
		KeyPlaceRollbackComplete, KeyPlaceLimitReached, KeyPlaceOneNotFound, KeyPlaceTwoNotFound,
		KeyRoleRollbackFailed,
		KeyRoadCreated, KeyRoadServerNotFound, KeyRoadDatabaseError, KeyRoadSamePlace,
		KeyRoadCategoryMissing, KeyRoadLimitReached, KeyRoadRoleCreationFailed,
		KeyRoadChannelFailedRollbackSuccess, KeyRoadChannelFailedRollbackFailed,
		KeyRoadInsertFailedRollbackSuccess, KeyRoadInsertFailedRollbackRoleFailed,
		KeyRoadInsertFailedRollbackChannelFail,
		KeyGuildOnly, KeyUnexpectedError, KeyNotYourPrompt,
	}
}

// TextKeys lists every key rendered from its value.
func TextKeys() []string {
	return []string{
		KeySetupSuccessTitle, KeySetupSuccessMessage, KeySetupErrorTitle, KeySetupErrorMessage,
		KeySetupUniverseNotFound, KeySetupServerNotFound, KeySetupCanceled, KeySetupTimeout,
		KeySetupContinueMessage, KeySetupCancelButton, KeySetupContinueButton,
		KeySetupRollbackFailed, KeySetupReorderFailed, KeySetupServerUpdate, KeySetupChannelsFailed,
		KeySetupAdminRole, KeySetupModeratorRole, KeySetupSpectatorRole, KeySetupPlayerRole,
		KeySetupRoadCategory, KeySetupAdminCategory, KeySetupNRPCategory, KeySetupRPCategory,
		KeySetupLogChannel, KeySetupCommandsChannel, KeySetupModerationChannel,
		KeySetupNRPGeneralChannel, KeySetupCharacterChannel, KeySetupWikiChannel,
		KeyChooseUniverse, KeyStartMessage, KeyPingPong, KeySupport, KeyReplyFailed,
		KeyAdminRoleName, KeyModeratorRoleName, KeySpectatorRoleName, KeyPlayerRoleName,
		KeyRoadCategoryName, KeyAdminCategoryName, KeyNRPCategoryName, KeyRPCategoryName,
		KeyLogChannelName, KeyCommandsChannelName, KeyModerationChannelName,
		KeyNRPGeneralChannelName, KeyRPCharacterChannelName, KeyRPWikiChannelName,
	}
}
