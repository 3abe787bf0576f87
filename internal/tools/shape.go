package tools

import (
	"time"

	"github.com/google/go-github/v60/github"
)

// Projections narrow upstream responses to a stable, minimal field set. Only
// the fields declared here ever reach the caller; everything else GitHub
// returns is dropped at this boundary.

type repoSummary struct {
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	Description     string `json:"description,omitempty"`
	Private         bool   `json:"private"`
	HTMLURL         string `json:"html_url"`
	Language        string `json:"language,omitempty"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	OpenIssuesCount int    `json:"open_issues_count"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

type repoDetail struct {
	repoSummary
	DefaultBranch string   `json:"default_branch,omitempty"`
	Topics        []string `json:"topics,omitempty"`
}

type createdRepo struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Private  bool   `json:"private"`
	HTMLURL  string `json:"html_url"`
	CloneURL string `json:"clone_url"`
}

type issueSummary struct {
	Number    int      `json:"number"`
	Title     string   `json:"title"`
	State     string   `json:"state"`
	User      string   `json:"user,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	Assignees []string `json:"assignees,omitempty"`
	Comments  int      `json:"comments"`
	HTMLURL   string   `json:"html_url"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

type issueRef struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
}

type updatedIssue struct {
	issueRef
	UpdatedAt string `json:"updated_at,omitempty"`
}

type pullSummary struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	State     string `json:"state"`
	User      string `json:"user,omitempty"`
	HeadRef   string `json:"head_ref,omitempty"`
	BaseRef   string `json:"base_ref,omitempty"`
	Draft     bool   `json:"draft"`
	HTMLURL   string `json:"html_url"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type createdPull struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	State   string `json:"state"`
	Draft   bool   `json:"draft"`
	HTMLURL string `json:"html_url"`
}

// File contents resolve to exactly one of these three shapes.

type dirEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
	Size int    `json:"size"`
}

type fileContents struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Size    int    `json:"size"`
	SHA     string `json:"sha"`
	Content string `json:"content"`
}

type otherContents struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

type repoSearchResult struct {
	TotalCount int              `json:"total_count"`
	Items      []repoSearchItem `json:"items"`
}

type repoSearchItem struct {
	FullName        string `json:"full_name"`
	Description     string `json:"description,omitempty"`
	HTMLURL         string `json:"html_url"`
	StargazersCount int    `json:"stargazers_count"`
	Language        string `json:"language,omitempty"`
}

type issueSearchResult struct {
	TotalCount int               `json:"total_count"`
	Items      []issueSearchItem `json:"items"`
}

type issueSearchItem struct {
	Number        int    `json:"number"`
	Title         string `json:"title"`
	State         string `json:"state"`
	HTMLURL       string `json:"html_url"`
	RepositoryURL string `json:"repository_url,omitempty"`
}

type userProfile struct {
	Login       string `json:"login"`
	Name        string `json:"name,omitempty"`
	Company     string `json:"company,omitempty"`
	Blog        string `json:"blog,omitempty"`
	Location    string `json:"location,omitempty"`
	Bio         string `json:"bio,omitempty"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	HTMLURL     string `json:"html_url"`
}

func shapeRepoSummary(r *github.Repository) repoSummary {
	return repoSummary{
		Name:            r.GetName(),
		FullName:        r.GetFullName(),
		Description:     r.GetDescription(),
		Private:         r.GetPrivate(),
		HTMLURL:         r.GetHTMLURL(),
		Language:        r.GetLanguage(),
		StargazersCount: r.GetStargazersCount(),
		ForksCount:      r.GetForksCount(),
		OpenIssuesCount: r.GetOpenIssuesCount(),
		UpdatedAt:       shapeTime(r.GetUpdatedAt()),
	}
}

func shapeRepoDetail(r *github.Repository) repoDetail {
	return repoDetail{
		repoSummary:   shapeRepoSummary(r),
		DefaultBranch: r.GetDefaultBranch(),
		Topics:        r.Topics,
	}
}

func shapeCreatedRepo(r *github.Repository) createdRepo {
	return createdRepo{
		Name:     r.GetName(),
		FullName: r.GetFullName(),
		Private:  r.GetPrivate(),
		HTMLURL:  r.GetHTMLURL(),
		CloneURL: r.GetCloneURL(),
	}
}

func shapeIssueSummary(i *github.Issue) issueSummary {
	out := issueSummary{
		Number:    i.GetNumber(),
		Title:     i.GetTitle(),
		State:     i.GetState(),
		User:      i.GetUser().GetLogin(),
		Comments:  i.GetComments(),
		HTMLURL:   i.GetHTMLURL(),
		CreatedAt: shapeTime(i.GetCreatedAt()),
		UpdatedAt: shapeTime(i.GetUpdatedAt()),
	}
	for _, l := range i.Labels {
		out.Labels = append(out.Labels, l.GetName())
	}
	for _, a := range i.Assignees {
		out.Assignees = append(out.Assignees, a.GetLogin())
	}
	return out
}

func shapeIssueRef(i *github.Issue) issueRef {
	return issueRef{
		Number:  i.GetNumber(),
		Title:   i.GetTitle(),
		State:   i.GetState(),
		HTMLURL: i.GetHTMLURL(),
	}
}

func shapeUpdatedIssue(i *github.Issue) updatedIssue {
	return updatedIssue{
		issueRef:  shapeIssueRef(i),
		UpdatedAt: shapeTime(i.GetUpdatedAt()),
	}
}

func shapePullSummary(p *github.PullRequest) pullSummary {
	return pullSummary{
		Number:    p.GetNumber(),
		Title:     p.GetTitle(),
		State:     p.GetState(),
		User:      p.GetUser().GetLogin(),
		HeadRef:   p.GetHead().GetRef(),
		BaseRef:   p.GetBase().GetRef(),
		Draft:     p.GetDraft(),
		HTMLURL:   p.GetHTMLURL(),
		CreatedAt: shapeTime(p.GetCreatedAt()),
		UpdatedAt: shapeTime(p.GetUpdatedAt()),
	}
}

func shapeCreatedPull(p *github.PullRequest) createdPull {
	return createdPull{
		Number:  p.GetNumber(),
		Title:   p.GetTitle(),
		State:   p.GetState(),
		Draft:   p.GetDraft(),
		HTMLURL: p.GetHTMLURL(),
	}
}

func shapeUserProfile(u *github.User) userProfile {
	return userProfile{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		Company:     u.GetCompany(),
		Blog:        u.GetBlog(),
		Location:    u.GetLocation(),
		Bio:         u.GetBio(),
		PublicRepos: u.GetPublicRepos(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		HTMLURL:     u.GetHTMLURL(),
	}
}

func shapeTime(ts github.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(time.RFC3339)
}
