package ax

// Common attribute names. The set an element supports is only known at run
// time; these are just the ones this package refers to.
const (
	AttrRole            = "AXRole"
	AttrSubrole         = "AXSubrole"
	AttrRoleDescription = "AXRoleDescription"
	AttrTitle           = "AXTitle"
	AttrValue           = "AXValue"
	AttrDescription     = "AXDescription"
	AttrChildren        = "AXChildren"
	AttrParent          = "AXParent"
	AttrWindows         = "AXWindows"
	AttrMainWindow      = "AXMainWindow"
	AttrFocusedWindow   = "AXFocusedWindow"
	AttrFocusedElement  = "AXFocusedUIElement"
	AttrFrontmost       = "AXFrontmost"
	AttrPosition        = "AXPosition"
	AttrSize            = "AXSize"
	AttrFrame           = "AXFrame"
	AttrEnabled         = "AXEnabled"
	AttrFocused         = "AXFocused"
	AttrSelected        = "AXSelected"
	AttrZoomButton      = "AXZoomButton"
	AttrCloseButton     = "AXCloseButton"
	AttrTitleUIElement  = "AXTitleUIElement"
)

// Common action names.
const (
	ActionPress     = "AXPress"
	ActionCancel    = "AXCancel"
	ActionConfirm   = "AXConfirm"
	ActionDecrement = "AXDecrement"
	ActionIncrement = "AXIncrement"
	ActionPick      = "AXPick"
	ActionRaise     = "AXRaise"
	ActionShowMenu  = "AXShowMenu"
	ActionZoom      = "AXZoomWindow"
)

// Common role values of AXRole.
const (
	RoleApplication = "AXApplication"
	RoleSystemWide  = "AXSystemWide"
	RoleWindow      = "AXWindow"
	RoleSheet       = "AXSheet"
	RoleButton      = "AXButton"
	RolePopUpButton = "AXPopUpButton"
	RoleCheckBox    = "AXCheckBox"
	RoleRadioButton = "AXRadioButton"
	RoleSlider      = "AXSlider"
	RoleStaticText  = "AXStaticText"
	RoleTextField   = "AXTextField"
	RoleTextArea    = "AXTextArea"
	RoleLink        = "AXLink"
	RoleImage       = "AXImage"
	RoleMenuBar     = "AXMenuBar"
	RoleMenu        = "AXMenu"
	RoleMenuItem    = "AXMenuItem"
	RoleTabGroup    = "AXTabGroup"
	RoleList        = "AXList"
	RoleTable       = "AXTable"
	RoleOutline     = "AXOutline"
	RoleRow         = "AXRow"
	RoleCell        = "AXCell"
	RoleGroup       = "AXGroup"
	RoleSplitGroup  = "AXSplitGroup"
	RoleScrollArea  = "AXScrollArea"
	RoleToolbar     = "AXToolbar"
	RoleWebArea     = "AXWebArea"
)

// Common subrole values of AXSubrole.
const (
	SubroleSearchField     = "AXSearchField"
	SubroleSecureTextField = "AXSecureTextField"
	SubroleSwitch          = "AXSwitch"
	SubroleCloseButton     = "AXCloseButton"
	SubroleMinimizeButton  = "AXMinimizeButton"
	SubroleZoomButton      = "AXZoomButton"
	SubroleFullScreen      = "AXFullScreenButton"
	SubroleDialog          = "AXDialog"
	SubroleSystemDialog    = "AXSystemDialog"
)
