package dashboard

import "foodadmin/internal/models"

// Dialog is the payload the UI renders as a blocking result popup after a
// mutation. Every failure collapses to one of the two generic error dialogs.
type Dialog struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
}

var (
	DeleteConfirmDialog = Dialog{
		Title:   "Are you sure?",
		Message: "You won't be able to revert this!",
		Icon:    "warning",
	}
	DeleteSuccessDialog = Dialog{
		Title:   "Deleted!",
		Message: "Your order has been deleted.",
		Icon:    "success",
	}
	DeleteErrorDialog = Dialog{
		Title:   "Error!",
		Message: "Something went wrong while deleting.",
		Icon:    "error",
	}
	StatusErrorDialog = Dialog{
		Title:   "Error!",
		Message: "Something went wrong while updating the status.",
		Icon:    "error",
	}
)

// StatusDialog returns the confirmation shown after a successful status
// change. Only dispatch and success have one; pending changes complete
// silently.
func StatusDialog(status models.Status) (Dialog, bool) {
	switch status {
	case models.StatusDispatch:
		return Dialog{Title: "Dispatch", Message: "The order is now dispatched.", Icon: "success"}, true
	case models.StatusSuccess:
		return Dialog{Title: "Success", Message: "The order has been completed.", Icon: "success"}, true
	}
	return Dialog{}, false
}
