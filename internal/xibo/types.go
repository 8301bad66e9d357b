package xibo

// Resource types mirror the CMS API's actual contract, including its
// quirks: numeric 0/1 flags stand in for booleans, and several string
// fields are null rather than absent. One canonical schema per resource;
// unknown extra fields in responses are accepted.

// ListOptions specifies paging parameters common to list methods.
type ListOptions struct {
	Start  int `url:"start,omitempty"`
	Length int `url:"length,omitempty"`
}

// DataSet represents a CMS dataset.
type DataSet struct {
	DataSetID    int             `json:"dataSetId"`
	DataSet      string          `json:"dataSet"`
	Description  *string         `json:"description,omitempty"`
	UserID       int             `json:"userId,omitempty"`
	Code         *string         `json:"code,omitempty"`
	FolderID     *int            `json:"folderId,omitempty"`
	IsLookup     int             `json:"isLookup,omitempty"`
	IsRemote     int             `json:"isRemote,omitempty"`
	LastDataEdit int             `json:"lastDataEdit,omitempty"`
	Columns      []DataSetColumn `json:"columns,omitempty"`
}

// DataSetColumn represents a column of a dataset.
type DataSetColumn struct {
	DataSetColumnID     int     `json:"dataSetColumnId"`
	DataSetID           int     `json:"dataSetId,omitempty"`
	Heading             string  `json:"heading"`
	DataTypeID          int     `json:"dataTypeId"`
	DataSetColumnTypeID int     `json:"dataSetColumnTypeId"`
	ListContent         *string `json:"listContent,omitempty"`
	ColumnOrder         int     `json:"columnOrder,omitempty"`
	Formula             *string `json:"formula,omitempty"`
}

// DataSetRss represents an RSS feed published from a dataset.
type DataSetRss struct {
	RssID     int     `json:"rssId"`
	DataSetID int     `json:"dataSetId,omitempty"`
	Title     string  `json:"title"`
	Author    *string `json:"author,omitempty"`
	Summary   *string `json:"summary,omitempty"`
	PSK       *string `json:"psk,omitempty"`
}

// DataSetListOptions specifies the optional parameters to the
// DatasetsService.List method.
type DataSetListOptions struct {
	ListOptions

	DataSetID int    `url:"dataSetId,omitempty"`
	DataSet   string `url:"dataSet,omitempty"`
	Code      string `url:"code,omitempty"`
	FolderID  int    `url:"folderId,omitempty"`
	Embed     string `url:"embed,omitempty"`
}

// DataSetAddOptions specifies the form fields for creating a dataset.
type DataSetAddOptions struct {
	DataSet     string `url:"dataSet"`
	Description string `url:"description,omitempty"`
	Code        string `url:"code,omitempty"`
	FolderID    int    `url:"folderId,omitempty"`
}

// DataSetColumnAddOptions specifies the form fields for adding a column.
type DataSetColumnAddOptions struct {
	Heading             string `url:"heading"`
	DataTypeID          int    `url:"dataTypeId"`
	DataSetColumnTypeID int    `url:"dataSetColumnTypeId"`
	ListContent         string `url:"listContent,omitempty"`
	ColumnOrder         int    `url:"columnOrder,omitempty"`
	Formula             string `url:"formula,omitempty"`
}

// DataSetRssOptions specifies the form fields for adding or editing a
// dataset RSS feed.
type DataSetRssOptions struct {
	Title   string `url:"title"`
	Author  string `url:"author,omitempty"`
	Summary string `url:"summary,omitempty"`
	Sort    string `url:"sort,omitempty"`
}

// Folder represents a CMS folder. The CMS reports folders as a flat list
// with parent references; the treeview package rebuilds the hierarchy.
type Folder struct {
	FolderID int    `json:"folderId"`
	Text     string `json:"text"`
	ParentID int    `json:"parentId,omitempty"`
	IsRoot   int    `json:"isRoot,omitempty"`
}

// FolderAddOptions specifies the form fields for creating a folder.
type FolderAddOptions struct {
	Text     string `url:"text"`
	ParentID int    `url:"parentId,omitempty"`
}

// User represents a CMS user.
type User struct {
	UserID       int     `json:"userId"`
	UserName     string  `json:"userName"`
	UserTypeID   int     `json:"userTypeId,omitempty"`
	Email        *string `json:"email,omitempty"`
	HomePageID   *string `json:"homePageId,omitempty"`
	LastAccessed *string `json:"lastAccessed,omitempty"`
	Retired      int     `json:"retired,omitempty"`
	GroupID      int     `json:"groupId,omitempty"`
}

// UserListOptions specifies the optional parameters to the
// UsersService.List method.
type UserListOptions struct {
	ListOptions

	UserID     int    `url:"userId,omitempty"`
	UserName   string `url:"userName,omitempty"`
	UserTypeID int    `url:"userTypeId,omitempty"`
	Retired    int    `url:"retired,omitempty"`
}

// Notification represents a CMS notification.
type Notification struct {
	NotificationID int     `json:"notificationId"`
	Subject        string  `json:"subject"`
	Body           *string `json:"body,omitempty"`
	CreateDt       *string `json:"createDt,omitempty"`
	ReleaseDt      *string `json:"releaseDt,omitempty"`
	IsInterrupt    int     `json:"isInterrupt,omitempty"`
	UserID         int     `json:"userId,omitempty"`
}

// NotificationAddOptions specifies the form fields for creating a
// notification. DisplayGroupIDs serializes as displayGroupIds[]= entries.
type NotificationAddOptions struct {
	Subject         string `url:"subject"`
	Body            string `url:"body,omitempty"`
	ReleaseDt       string `url:"releaseDt,omitempty"`
	IsInterrupt     int    `url:"isInterrupt"`
	DisplayGroupIDs []int  `url:"displayGroupIds,brackets"`
}

// Resolution represents a CMS display resolution.
type Resolution struct {
	ResolutionID int    `json:"resolutionId"`
	Resolution   string `json:"resolution"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Enabled      int    `json:"enabled,omitempty"`
}

// ResolutionListOptions specifies the optional parameters to the
// ResolutionsService.List method.
type ResolutionListOptions struct {
	ListOptions

	Enabled *int `url:"enabled,omitempty"`
}

// ResolutionAddOptions specifies the form fields for creating a resolution.
type ResolutionAddOptions struct {
	Resolution string `url:"resolution"`
	Width      int    `url:"width"`
	Height     int    `url:"height"`
}

// Display represents a registered CMS display.
type Display struct {
	DisplayID      int     `json:"displayId"`
	Display        string  `json:"display"`
	Description    *string `json:"description,omitempty"`
	DisplayGroupID int     `json:"displayGroupId,omitempty"`
	Licensed       int     `json:"licensed,omitempty"`
	LoggedIn       int     `json:"loggedIn,omitempty"`
	LastAccessed   *string `json:"lastAccessed,omitempty"`
	ClientType     *string `json:"clientType,omitempty"`
	ClientVersion  *string `json:"clientVersion,omitempty"`
	MacAddress     *string `json:"macAddress,omitempty"`
}

// DisplayListOptions specifies the optional parameters to the
// DisplaysService.List method.
type DisplayListOptions struct {
	ListOptions

	DisplayID  int    `url:"displayId,omitempty"`
	Display    string `url:"display,omitempty"`
	Authorised int    `url:"authorised,omitempty"`
}

// Font represents a font stored in the CMS.
type Font struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	FileName   string  `json:"fileName"`
	Size       int64   `json:"size,omitempty"`
	CreatedAt  *string `json:"createdAt,omitempty"`
	ModifiedAt *string `json:"modifiedAt,omitempty"`
}

// Media represents a library media item.
type Media struct {
	MediaID   int     `json:"mediaId"`
	Name      string  `json:"name"`
	MediaType string  `json:"mediaType,omitempty"`
	FileName  *string `json:"fileName,omitempty"`
	FileSize  int64   `json:"fileSize,omitempty"`
	Duration  int     `json:"duration,omitempty"`
	Retired   int     `json:"retired,omitempty"`
}

// UploadResult is the CMS response shape for library and font uploads.
type UploadResult struct {
	Files []UploadedFile `json:"files"`
}

// UploadedFile describes one uploaded file in an UploadResult. Error is
// set by the CMS when the individual file was rejected.
type UploadedFile struct {
	MediaID  int     `json:"mediaId,omitempty"`
	Name     string  `json:"name"`
	FileName string  `json:"fileName,omitempty"`
	Size     int64   `json:"size,omitempty"`
	Error    *string `json:"error,omitempty"`
}
