package constants

// smartedu response codes
// these consist of 4 digit numbers
//
// the 1st 3 are randomly generated but represent specific scenarios
// 4th indicates if the response requires user interactions through a dialog box. 0 means it does not require. 1 means it requires.

var ACCOUNT_CREATED uint = 9110           // take the user to the login page
var ACCOUNT_EXISTS uint = 9120            // take the user to the login page
var NO_USABLE_REFERENCE_IMAGE uint = 3140 // tell the admin the uploaded reference photo has no detectable face
var PREDICTION_DEGRADED uint = 3720       // warn that heuristic scoring was used because a trained model was unavailable

var USER_ROLES = []string{"student", "teacher", "admin"}
var ATTENDANCE_STATUSES = []string{"present", "absent", "late"}
var ASSESSMENT_TYPES = []string{"exam", "assignment", "quiz", "project"}

var SUPPORT_EMAIL = "help@smartedu.io"

var MAX_FRAME_FACES = 30
var DEFAULT_SEMESTER = "current"
